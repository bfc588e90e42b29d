package model

import "io"

// Upload is an optional file attached to a book submission.
type Upload struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type AddBookRequest struct {
	Title  string  `json:"title" form:"title" validate:"required"`
	Author string  `json:"author" form:"author" validate:"required"`
	Genre  string  `json:"genre" form:"genre" validate:"required"`
	PDF    *Upload `json:"-" form:"-"`
}

func (r *AddBookRequest) Reset() { *r = AddBookRequest{} }

type AddDonationRequest struct {
	BookTitle string `json:"bookTitle" form:"bookTitle" validate:"required"`
	DonorName string `json:"donorName" form:"donorName" validate:"required"`
	Condition string `json:"condition" form:"condition" validate:"required"`
	Notes     string `json:"notes" form:"notes"`
}

func (r *AddDonationRequest) Reset() { *r = AddDonationRequest{} }

type AddPoemRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content" validate:"required"`
	Author  string `json:"author" form:"author" validate:"required"`
}

func (r *AddPoemRequest) Reset() { *r = AddPoemRequest{} }

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is the transient message shown after a submission.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type AddBookResponse struct {
	Book   Book   `json:"book"`
	Notice Notice `json:"notice"`
}

type AddDonationResponse struct {
	Donation Donation `json:"donation"`
	Notice   Notice   `json:"notice"`
}

type AddPoemResponse struct {
	Poem   Poem   `json:"poem"`
	Notice Notice `json:"notice"`
}
