package lessons

import "fmt"

// Book is a record with display methods.
type Book struct {
	Pages  uint32
	Rating uint8
}

func NewBook(pages uint32, rating uint8) Book {
	return Book{Pages: pages, Rating: rating}
}

func (b Book) PageCountLine() string {
	return fmt.Sprintf("Book has %d pages", b.Pages)
}

func (b Book) RatingLine() string {
	return fmt.Sprintf("Book has a rating of %d/5", b.Rating)
}

type Person struct {
	Name string
	Age  uint8
}

func NewPerson(name string, age uint8) Person {
	return Person{Name: name, Age: age}
}

// Details renders the person on one line.
func (p Person) Details() string {
	return fmt.Sprintf("Name: %s, Age: %d", p.Name, p.Age)
}
