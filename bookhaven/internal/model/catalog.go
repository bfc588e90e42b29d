package model

type EBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	PDFURL      string `json:"pdfUrl"`
}

type Category struct {
	Name    string  `json:"name"`
	Entries []EBook `json:"entries"`
}
