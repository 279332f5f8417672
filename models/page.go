package models

// Page is one page of a paginated list as consumed by the paging runtime.
type Page[T any] struct {
	// Items are appended to the list in order.
	Items []T

	// NextPage is the cursor to request after this page.
	NextPage int

	// HasMore is false once the server reports the last page.
	HasMore bool
}

// PageBean is the wire shape of a paginated list inside the response
// envelope.
type PageBean[T any] struct {
	CurPage   int  `json:"curPage"`
	Datas     []T  `json:"datas"`
	Offset    int  `json:"offset"`
	Over      bool `json:"over"`
	PageCount int  `json:"pageCount"`
	Size      int  `json:"size"`
	Total     int  `json:"total"`
}

// ToPage converts the wire page into a [Page].
//
// The server reports CurPage 1-based. Endpoints whose cursor starts at 0
// therefore continue at CurPage, while 1-based endpoints continue at
// CurPage+1.
func (p PageBean[T]) ToPage(firstPage int) Page[T] {
	next := p.CurPage
	if firstPage > 0 {
		next = p.CurPage + 1
	}

	items := p.Datas
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:    items,
		NextPage: next,
		HasMore:  !p.Over && p.CurPage < p.PageCount,
	}
}
