package service

import (
	"strings"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
)

const placeholderLink = "#"

var ebooks = []model.Category{
	{
		Name: "Fiction",
		Entries: []model.EBook{
			{Title: "The Enchanted Garden", Author: "Emma Rose", Description: "A magical tale of discovery and wonder", PDFURL: placeholderLink},
			{Title: "Moonlight Memories", Author: "Sarah Chen", Description: "Stories that dance between reality and dreams", PDFURL: placeholderLink},
			{Title: "The Last Letter", Author: "James Wilson", Description: "A journey through time and love", PDFURL: placeholderLink},
		},
	},
	{
		Name: "Motivation",
		Entries: []model.EBook{
			{Title: "Rise & Shine", Author: "Michael Torres", Description: "Daily inspiration for your best life", PDFURL: placeholderLink},
			{Title: "Unstoppable You", Author: "Lisa Anderson", Description: "Unleash your inner champion", PDFURL: placeholderLink},
			{Title: "The Power Within", Author: "David Kumar", Description: "Discover your true potential", PDFURL: placeholderLink},
		},
	},
	{
		Name: "Self-Help",
		Entries: []model.EBook{
			{Title: "Mindful Moments", Author: "Dr. Rachel Green", Description: "Finding peace in everyday life", PDFURL: placeholderLink},
			{Title: "The Confidence Code", Author: "Amanda Brooks", Description: "Build unshakeable self-belief", PDFURL: placeholderLink},
			{Title: "Healing Hearts", Author: "Dr. Thomas Lee", Description: "A guide to emotional wellness", PDFURL: placeholderLink},
		},
	},
}

// Catalog is the read-only eBook shelf. It never touches the store.
type Catalog struct{}

func NewCatalog() *Catalog { return &Catalog{} }

func (*Catalog) Categories() []model.Category {
	out := make([]model.Category, 0, len(ebooks))
	for _, c := range ebooks {
		out = append(out, model.Category{Name: c.Name, Entries: append([]model.EBook(nil), c.Entries...)})
	}
	return out
}

func (*Catalog) Entries(category string) ([]model.EBook, error) {
	for _, c := range ebooks {
		if strings.EqualFold(c.Name, category) {
			return append([]model.EBook(nil), c.Entries...), nil
		}
	}
	return nil, errs.ErrNotFound
}

// View returns the link an entry opens.
func (c *Catalog) View(category string, index int) (string, error) {
	entries, err := c.Entries(category)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(entries) {
		return "", errs.ErrNotFound
	}
	return entries[index].PDFURL, nil
}
