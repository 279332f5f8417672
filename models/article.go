package models

// Article is a single feed entry.
type Article struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Link             string `json:"link"`
	Author           string `json:"author"`
	ShareUser        string `json:"shareUser"`
	ChapterName      string `json:"chapterName"`
	SuperChapterName string `json:"superChapterName"`
	NiceDate         string `json:"niceDate"`
	PublishTime      int64  `json:"publishTime"`
	Collect          bool   `json:"collect"`
	Fresh            bool   `json:"fresh"`
}

// DisplayAuthor returns the author, falling back to the sharing user for
// articles posted to the square.
func (a Article) DisplayAuthor() string {
	if a.Author != "" {
		return a.Author
	}
	return a.ShareUser
}

// Message is an entry of the user's message box.
type Message struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	FromUser string `json:"fromUser"`
	Link     string `json:"fullLink"`
	NiceDate string `json:"niceDate"`
	Category int    `json:"category"`
	IsRead   int    `json:"isRead"`
}
