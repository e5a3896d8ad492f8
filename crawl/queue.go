// Package crawl — FIFO queue with deduplication.
package crawl

// Queue hands out URLs in insertion order and ignores URLs it has already
// accepted. It is not safe for concurrent use.
type Queue struct {
	items []string
	seen  map[string]struct{}
	next  int
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{seen: make(map[string]struct{})}
}

// Add enqueues url unless it was seen before, and reports whether it was added.
func (q *Queue) Add(url string) bool {
	if _, ok := q.seen[url]; ok {
		return false
	}
	q.seen[url] = struct{}{}
	q.items = append(q.items, url)
	return true
}

// HasNext reports whether unprocessed URLs remain.
func (q *Queue) HasNext() bool {
	return q.next < len(q.items)
}

// Next returns the next unprocessed URL. It panics when HasNext is false.
func (q *Queue) Next() string {
	url := q.items[q.next]
	q.next++
	return url
}

// Visited returns the number of unique URLs accepted so far.
func (q *Queue) Visited() int {
	return len(q.seen)
}

// Len returns the number of queued URLs, processed or not.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns every accepted URL in insertion order.
func (q *Queue) All() []string {
	return append([]string(nil), q.items...)
}
