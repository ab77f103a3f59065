package web

// MenuItem is one entry of the sidebar navigation.
type MenuItem int

const (
	MenuHome MenuItem = iota
	MenuAbout
	MenuReviews
	MenuContact
)

// Menu lists the entries in display order.
var Menu = []MenuItem{MenuHome, MenuAbout, MenuReviews, MenuContact}

func (m MenuItem) Title() string {
	switch m {
	case MenuHome:
		return "Home"
	case MenuAbout:
		return "About"
	case MenuReviews:
		return "Reviews"
	case MenuContact:
		return "Contact"
	}
	return ""
}

func (m MenuItem) Icon() string {
	switch m {
	case MenuHome:
		return "🏠"
	case MenuAbout:
		return "ℹ️"
	case MenuReviews:
		return "⭐"
	case MenuContact:
		return "📞"
	}
	return ""
}

func (m MenuItem) Path() string {
	switch m {
	case MenuHome:
		return "/"
	case MenuAbout:
		return "/about"
	case MenuReviews:
		return "/reviews"
	case MenuContact:
		return "/contact"
	}
	return ""
}

type menuEntry struct {
	Title  string
	Icon   string
	Path   string
	Active bool
}

func menuEntries(active MenuItem) []menuEntry {
	entries := make([]menuEntry, 0, len(Menu))
	for _, item := range Menu {
		entries = append(entries, menuEntry{
			Title:  item.Title(),
			Icon:   item.Icon(),
			Path:   item.Path(),
			Active: item == active,
		})
	}
	return entries
}
