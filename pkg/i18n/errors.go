package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrInvalidLanguage   = errors.New("invalid language code in translations")
	ErrNilTranslations   = errors.New("nil translations map for language")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	ErrParsingCancelled = errors.New("translation parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse translation content")
	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrFailedToReadDir  = errors.New("failed to read translation directory")
)
