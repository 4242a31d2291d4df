package stub

import (
	"context"
	"sync"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
)

type Preferences struct {
	mutex sync.Mutex
	flags map[domain.Flag]bool
}

func NewPreferences() *Preferences {
	return &Preferences{flags: make(map[domain.Flag]bool)}
}

func (p *Preferences) Get(_ context.Context, flag domain.Flag) (bool, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.flags[flag], nil
}

func (p *Preferences) Set(_ context.Context, flag domain.Flag, value bool) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.flags[flag] = value
	return nil
}
