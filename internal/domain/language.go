package domain

// Language is one entry of the fixed regional language set
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
