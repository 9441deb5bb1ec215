// Package page holds the state behind the People Page: the list fetched once
// from the people source and the loading and error flags that pick which
// parts of the page are rendered.
package page

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/people"
)

// Source provides the people list. *peopleapi.Client implements it.
type Source interface {
	GetPeople(ctx context.Context) ([]people.Person, error)
}

// Page is the page-level state. The list is fetched once by Load; every
// render derives its visible subset from the criteria passed to View.
type Page struct {
	source Source
	log    *zap.Logger

	once sync.Once
	mu   sync.RWMutex
	// enriched is rebuilt whenever the raw list changes
	list     []people.Person
	enriched []people.Person
	loading  bool
	failed   bool
	loaded   bool
}

// New creates a page backed by source. A nil logger disables logging.
func New(source Source, log *zap.Logger) *Page {
	if log == nil {
		log = zap.NewNop()
	}
	return &Page{
		source: source,
		log:    log.Named("page"),
		list:   []people.Person{},
	}
}

// Load fetches the people list. Only the first call does any work; later
// calls return immediately, so filter changes never trigger a new fetch.
// The loading flag is set before the fetch and cleared afterwards whatever
// the outcome. A failed fetch sets the error flag and is not retried.
func (p *Page) Load(ctx context.Context) {
	p.once.Do(func() {
		p.load(ctx)
	})
}

// Start runs Load in a new goroutine and returns a channel closed when it finishes.
func (p *Page) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Load(ctx)
	}()
	return done
}

func (p *Page) load(ctx context.Context) {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.loading = false
		p.loaded = true
		p.mu.Unlock()
	}()

	started := time.Now()
	p.log.Info("loading people")

	list, err := p.source.GetPeople(ctx)
	if err != nil {
		p.log.Error("failed to load people", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		p.mu.Lock()
		p.failed = true
		p.mu.Unlock()
		return
	}
	if list == nil {
		list = []people.Person{}
	}

	enriched := people.WithParents(list)

	p.mu.Lock()
	p.list = list
	p.enriched = enriched
	p.mu.Unlock()

	p.log.Info("people loaded", zap.Int("count", len(list)), zap.Duration("elapsed", time.Since(started)))
}

// View is a render snapshot of the page.
type View struct {
	// Loading is true while the fetch is in flight; nothing but the loader renders then.
	Loading bool `json:"loading"`
	// Error is true once the fetch failed.
	Error bool `json:"error"`
	// NoPeople is true when loading is over and the server returned nobody.
	NoPeople bool `json:"noPeople"`
	// ShowTable is true when not loading and not failed.
	ShowTable bool `json:"showTable"`
	// Total is the number of people the server returned.
	Total    int             `json:"total"`
	People   []people.Person `json:"people"`
	Criteria people.Criteria `json:"criteria"`
}

// View returns the current state filtered and sorted by c.
//
// A page whose load has not finished renders as loading. The error and
// empty messages are gated independently, so both can be set at once.
// ShowTable does not depend on emptiness.
func (p *Page) View(c people.Criteria) View {
	p.mu.RLock()
	loading, failed := p.loading || !p.loaded, p.failed
	total := len(p.list)
	enriched := p.enriched
	p.mu.RUnlock()

	v := View{
		Loading:  loading,
		Error:    failed,
		Total:    total,
		Criteria: c,
		People:   []people.Person{},
	}
	if loading {
		return v
	}
	v.NoPeople = total == 0
	v.ShowTable = !failed
	v.People = people.Filter(enriched, c)
	return v
}

// Loaded reports whether a load has finished, successfully or not.
func (p *Page) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}
