package backend

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-feed-client/models"
)

const (
	seedHomeArticles   = 45
	seedSquareArticles = 12
	seedMessages       = 25
	seedFavorites      = 3
)

var chapters = []struct{ super, name string }{
	{"Open source", "Libraries"},
	{"Architecture", "Networking"},
	{"Architecture", "Persistence"},
	{"Tooling", "Build"},
	{"Platform", "Concurrency"},
}

var squareAuthors = []string{"mia", "leo", "ivan", "sara"}

func niceDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// seedArticles returns count articles with ids starting at firstID, newest
// first.
func seedArticles(firstID int64, count int, now time.Time, square bool) []models.Article {
	articles := make([]models.Article, 0, count)
	for i := 0; i < count; i++ {
		id := firstID + int64(i)
		published := now.Add(-time.Duration(i) * time.Hour)
		chapter := chapters[i%len(chapters)]

		a := models.Article{
			ID:               id,
			Title:            fmt.Sprintf("Article %d: %s notes", id, chapter.name),
			Link:             fmt.Sprintf("https://feed.example/article/%d", id),
			ChapterName:      chapter.name,
			SuperChapterName: chapter.super,
			NiceDate:         niceDate(published),
			PublishTime:      published.UnixMilli(),
			Fresh:            i < 3,
		}
		if square {
			a.ShareUser = squareAuthors[i%len(squareAuthors)]
			a.Title = fmt.Sprintf("Shared %d: %s", id, chapter.name)
		} else {
			a.Author = "editor"
		}
		articles = append(articles, a)
	}
	return articles
}

func seedMessageBox(user models.LoginResult, now time.Time) []models.Message {
	messages := make([]models.Message, 0, seedMessages)
	for i := 0; i < seedMessages; i++ {
		messages = append(messages, models.Message{
			ID:       user.ID*1000 + int64(i+1),
			Title:    fmt.Sprintf("Reply #%d", i+1),
			Message:  fmt.Sprintf("%s, someone answered your comment", user.Nickname),
			FromUser: squareAuthors[i%len(squareAuthors)],
			Link:     fmt.Sprintf("https://feed.example/message/%d", i+1),
			NiceDate: niceDate(now.Add(-time.Duration(i) * 30 * time.Minute)),
			Category: 1,
			IsRead:   1,
		})
	}
	return messages
}
