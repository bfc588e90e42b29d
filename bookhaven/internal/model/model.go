package model

// Collection keys in the persistent store.
const (
	BooksKey     = "books"
	DonationsKey = "donations"
	PoemsKey     = "poems"
)

// Record is a persisted entity of one of the collections.
type Record interface {
	RecordID() string
}

type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	// PDFURL is empty or a data URI holding the uploaded file.
	PDFURL string `json:"pdfUrl"`
}

func (b Book) RecordID() string { return b.ID }

func (b Book) HasAttachment() bool { return b.PDFURL != "" }

type Donation struct {
	ID        string `json:"id"`
	BookTitle string `json:"bookTitle"`
	DonorName string `json:"donorName"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
	Date      string `json:"date"`
}

func (d Donation) RecordID() string { return d.ID }

type Poem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

func (p Poem) RecordID() string { return p.ID }

type List[T Record] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

func NewList[T Record](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Total: len(items), Items: items}
}

func (l List[T]) Empty() bool { return len(l.Items) == 0 }

type (
	ListBooks     = List[Book]
	ListDonations = List[Donation]
	ListPoems     = List[Poem]
)
