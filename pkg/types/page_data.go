package types

// NavbarData is injected into every rendered page.
type NavbarData struct {
	IsAuthenticated bool
	UserEmail       string
}

type NavbarDataSetter interface {
	SetNavbarData(NavbarData)
}

// BasePageData carries the fields shared by every page template. Embed it in
// a page data struct to satisfy NavbarDataSetter.
type BasePageData struct {
	Title  string
	Notice string
	Error  string
	Navbar NavbarData
}

func (b *BasePageData) SetNavbarData(data NavbarData) {
	b.Navbar = data
}
