package podcast

// Person is a named party: an Atom author or contributor, or an iTunes owner.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URI   string `json:"uri,omitempty"`
}

type PersonBuilder struct {
	name  string
	email string
	uri   string
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{}
}

func (b *PersonBuilder) Name(name string) *PersonBuilder {
	b.name = name
	return b
}

func (b *PersonBuilder) Email(email string) *PersonBuilder {
	b.email = email
	return b
}

func (b *PersonBuilder) URI(uri string) *PersonBuilder {
	b.uri = uri
	return b
}

func (b *PersonBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.name != ""
}

func (b *PersonBuilder) Build() (Person, bool) {
	if !b.HasEnoughDataToBuild() {
		return Person{}, false
	}
	return Person{Name: b.name, Email: b.email, URI: b.uri}, true
}

func (b *PersonBuilder) ApplyFrom(person *Person) *PersonBuilder {
	if person == nil {
		return b
	}
	return b.Name(person.Name).Email(person.Email).URI(person.URI)
}

// Link is an <atom:link> element.
type Link struct {
	Href     string `json:"href"`
	HrefLang string `json:"hrefLang,omitempty"`
	Length   string `json:"length,omitempty"`
	Rel      string `json:"rel,omitempty"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type,omitempty"`
}

type LinkBuilder struct {
	href     string
	hrefLang string
	length   string
	rel      string
	title    string
	linkType string
}

func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{}
}

func (b *LinkBuilder) Href(href string) *LinkBuilder {
	b.href = href
	return b
}

func (b *LinkBuilder) HrefLang(hrefLang string) *LinkBuilder {
	b.hrefLang = hrefLang
	return b
}

func (b *LinkBuilder) Length(length string) *LinkBuilder {
	b.length = length
	return b
}

func (b *LinkBuilder) Rel(rel string) *LinkBuilder {
	b.rel = rel
	return b
}

func (b *LinkBuilder) Title(title string) *LinkBuilder {
	b.title = title
	return b
}

func (b *LinkBuilder) Type(linkType string) *LinkBuilder {
	b.linkType = linkType
	return b
}

func (b *LinkBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.href != ""
}

func (b *LinkBuilder) Build() (Link, bool) {
	if !b.HasEnoughDataToBuild() {
		return Link{}, false
	}
	return Link{
		Href:     b.href,
		HrefLang: b.hrefLang,
		Length:   b.length,
		Rel:      b.rel,
		Title:    b.title,
		Type:     b.linkType,
	}, true
}

func (b *LinkBuilder) ApplyFrom(link *Link) *LinkBuilder {
	if link == nil {
		return b
	}
	return b.Href(link.Href).
		HrefLang(link.HrefLang).
		Length(link.Length).
		Rel(link.Rel).
		Title(link.Title).
		Type(link.Type)
}

// Atom is the data of the Atom namespace found on a channel or an item.
type Atom struct {
	Authors      []Person `json:"authors,omitempty"`
	Contributors []Person `json:"contributors,omitempty"`
	Links        []Link   `json:"links,omitempty"`
}

type AtomBuilder struct {
	authors      []*PersonBuilder
	contributors []*PersonBuilder
	links        []*LinkBuilder
}

func NewAtomBuilder() *AtomBuilder {
	return &AtomBuilder{}
}

func (b *AtomBuilder) AddAuthorBuilder(author *PersonBuilder) *AtomBuilder {
	b.authors = append(b.authors, author)
	return b
}

func (b *AtomBuilder) AddAllAuthorBuilders(authors []*PersonBuilder) *AtomBuilder {
	b.authors = append(b.authors, authors...)
	return b
}

func (b *AtomBuilder) AddContributorBuilder(contributor *PersonBuilder) *AtomBuilder {
	b.contributors = append(b.contributors, contributor)
	return b
}

func (b *AtomBuilder) AddAllContributorBuilders(contributors []*PersonBuilder) *AtomBuilder {
	b.contributors = append(b.contributors, contributors...)
	return b
}

func (b *AtomBuilder) AddLinkBuilder(link *LinkBuilder) *AtomBuilder {
	b.links = append(b.links, link)
	return b
}

func (b *AtomBuilder) AddAllLinkBuilders(links []*LinkBuilder) *AtomBuilder {
	b.links = append(b.links, links...)
	return b
}

func (b *AtomBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return anyReady[Person](b.authors) ||
		anyReady[Person](b.contributors) ||
		anyReady[Link](b.links)
}

func (b *AtomBuilder) Build() (Atom, bool) {
	if !b.HasEnoughDataToBuild() {
		return Atom{}, false
	}
	return Atom{
		Authors:      buildAll[Person](b.authors),
		Contributors: buildAll[Person](b.contributors),
		Links:        buildAll[Link](b.links),
	}, true
}

func (b *AtomBuilder) ApplyFrom(atom *Atom) *AtomBuilder {
	if atom == nil {
		return b
	}
	return b.AddAllAuthorBuilders(personBuilders(atom.Authors)).
		AddAllContributorBuilders(personBuilders(atom.Contributors)).
		AddAllLinkBuilders(linkBuilders(atom.Links))
}

func personBuilders(persons []Person) []*PersonBuilder {
	builders := make([]*PersonBuilder, 0, len(persons))
	for i := range persons {
		builders = append(builders, NewPersonBuilder().ApplyFrom(&persons[i]))
	}
	return builders
}

func linkBuilders(links []Link) []*LinkBuilder {
	builders := make([]*LinkBuilder, 0, len(links))
	for i := range links {
		builders = append(builders, NewLinkBuilder().ApplyFrom(&links[i]))
	}
	return builders
}
