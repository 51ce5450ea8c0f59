package views

// Page carries what the layout shows around a body.
type Page struct {
	Title string
	// CurrentUser is the signed-in user's name, empty for visitors.
	CurrentUser string
	Flashes     []string
}

var navLinks = []Item{
	{Href: PostsPath, Label: "Posts"},
	{Href: CategoriesPath, Label: "Categories"},
	{Href: AuthorsPath, Label: "Authors"},
	{Href: FormsPath, Label: "Forms"},
	{Href: QuestionsPath, Label: "Questions"},
	{Href: AnswersPath, Label: "Answers"},
	{Href: UsersPath, Label: "Users"},
}

// documentTitle prefixes the site name with the page title, when there is one.
func documentTitle(title string) string {
	if title == "" {
		return "quire"
	}
	return title + " · quire"
}
