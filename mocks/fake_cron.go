//go:build !release

package mocks

import "sync"

// FakeCron stores jobs by their spec.
type FakeCron struct {
	sync.Mutex
	jobs map[string]func()
}

func (f *FakeCron) AddFunc(spec string, cmd func()) (int, error) {
	f.Lock()
	defer f.Unlock()
	f.jobs[spec] = cmd
	return len(f.jobs), nil
}

func (*FakeCron) RemoveFunc(id int) {
}

// Run invokes job registered with the spec, if any.
func (f *FakeCron) Run(spec string) bool {
	f.Lock()
	cmd, ok := f.jobs[spec]
	f.Unlock()
	if !ok {
		return false
	}

	cmd()
	return true
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *FakeCron {
	return &FakeCron{
		jobs: make(map[string]func()),
	}
}
