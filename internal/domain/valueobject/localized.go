package valueobject

// LocalizedText carries the two storefront languages side by side.
// English is the fallback when the Bulgarian text is empty.
type LocalizedText struct {
	EN string `json:"en"`
	BG string `json:"bg"`
}

func NewLocalizedText(en, bg string) LocalizedText {
	return LocalizedText{EN: en, BG: bg}
}

func (t LocalizedText) In(lang string) string {
	if lang == "bg" && t.BG != "" {
		return t.BG
	}
	return t.EN
}

func (t LocalizedText) IsEmpty() bool {
	return t.EN == "" && t.BG == ""
}
