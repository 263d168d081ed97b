package skill

type Resource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

type Trending struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
	Count  int    `json:"count"`
}
