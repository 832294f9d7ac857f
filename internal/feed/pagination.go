package feed

// DefaultPageSize applies when a pager is built with a non-positive size.
const DefaultPageSize = 5

// Page describes the visible window. Start is inclusive, End exclusive, both
// zero-based item indexes.
type Page struct {
	Current     int  `json:"current"`
	Size        int  `json:"size"`
	Total       int  `json:"total"`
	Start       int  `json:"start"`
	End         int  `json:"end"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Pager tracks a current page over a list of itemCount items.
// Invariant: 1 <= current <= total.
type Pager struct {
	itemCount int
	size      int
	total     int
	current   int
}

func NewPager(itemCount, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	p := &Pager{size: pageSize, current: 1}
	p.Resize(itemCount)
	return p
}

// GoTo moves to page, clamped into [1, Total].
func (p *Pager) GoTo(page int) {
	if page < 1 {
		page = 1
	}
	if page > p.total {
		page = p.total
	}
	p.current = page
}

func (p *Pager) Next()     { p.GoTo(p.current + 1) }
func (p *Pager) Previous() { p.GoTo(p.current - 1) }

// Resize recomputes the page count for a new item count and clamps the current page.
func (p *Pager) Resize(itemCount int) {
	if itemCount < 0 {
		itemCount = 0
	}
	p.itemCount = itemCount
	p.total = (itemCount + p.size - 1) / p.size
	if p.total < 1 {
		p.total = 1
	}
	p.GoTo(p.current)
}

func (p *Pager) Current() int { return p.current }
func (p *Pager) Total() int   { return p.total }

func (p *Pager) Page() Page {
	start := (p.current - 1) * p.size
	end := start + p.size
	if end > p.itemCount {
		end = p.itemCount
	}
	if start > end {
		start = end
	}
	return Page{
		Current:     p.current,
		Size:        p.size,
		Total:       p.total,
		Start:       start,
		End:         end,
		HasNext:     p.current < p.total,
		HasPrevious: p.current > 1,
	}
}

// Slice returns the items visible on page. The window is clamped to items.
func Slice[T any](items []T, page Page) []T {
	start, end := page.Start, page.End
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end]
}

// Link is one entry of the page-number strip. Gap entries stand for skipped pages.
type Link struct {
	Page    int  `json:"page,omitempty"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

const maxPlainLinks = 7

// Links returns the page-number strip: every page when there are few,
// otherwise the first page, the neighbours of the current page and the last
// page, with gaps in between.
func (p *Pager) Links() []Link {
	if p.total <= maxPlainLinks {
		links := make([]Link, 0, p.total)
		for i := 1; i <= p.total; i++ {
			links = append(links, Link{Page: i, Current: i == p.current})
		}
		return links
	}
	var links []Link
	add := func(i int) {
		links = append(links, Link{Page: i, Current: i == p.current})
	}
	add(1)
	lo, hi := p.current-1, p.current+1
	if lo <= 2 {
		lo = 2
	} else {
		links = append(links, Link{Gap: true})
	}
	if hi >= p.total-1 {
		hi = p.total - 1
	}
	for i := lo; i <= hi; i++ {
		add(i)
	}
	if hi < p.total-1 {
		links = append(links, Link{Gap: true})
	}
	add(p.total)
	return links
}
