package ocr

import "strconv"

// WithTesseractPSM sets the page segmentation mode (PSM) variable for Tesseract.
// See https://tesseract-ocr.github.io/tessdoc/ImproveQuality.html#page-segmentation-method for values.
func WithTesseractPSM(mode int) InputOption {
	return func(in *Input) { setMetadata(in, "tessedit_pageseg_mode", strconv.Itoa(mode)) }
}

// WithTesseractWhitelist restricts recognition to the provided characters.
func WithTesseractWhitelist(chars string) InputOption {
	return func(in *Input) { setMetadata(in, "tessedit_char_whitelist", chars) }
}

// WithTesseractBlacklist excludes the provided characters from recognition.
func WithTesseractBlacklist(chars string) InputOption {
	return func(in *Input) { setMetadata(in, "tessedit_char_blacklist", chars) }
}

func setMetadata(in *Input, key, value string) {
	if in.Metadata == nil {
		in.Metadata = make(map[string]string)
	}
	in.Metadata[key] = value
}
