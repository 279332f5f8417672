package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-feed-client/models"
)

// printer serializes console output written from the main loop and from
// the App goroutine.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) session(state models.SessionState) {
	if !state.LoggedIn {
		p.printf("session: guest\n")
		return
	}

	name := ""
	coins := 0
	if state.UserInfo != nil {
		name = state.UserInfo.User.Nickname
		if name == "" {
			name = state.UserInfo.User.Username
		}
		coins = state.UserInfo.Coin.CoinCount
	}
	p.printf("session: %s (profile %s, coins %d)\n", name, state.Profile, coins)
}

func (p *printer) article(n int, a models.Article) {
	mark := " "
	if a.Collect {
		mark = "*"
	}
	p.printf("%4d %s %-48s %s\n", n, mark, a.Title, a.DisplayAuthor())
}
