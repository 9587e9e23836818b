// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"sync"
)

// device is a process-wide sound device. It is set up on first use and
// suspended whenever its reference count drops to zero.
type device struct {
	init    func() error
	resume  func() error
	suspend func() error

	once    sync.Once
	initErr error

	mu   sync.Mutex
	refs int
}

func (d *device) acquire() error {
	d.once.Do(func() { d.initErr = d.init() })
	if d.initErr != nil {
		return fmt.Errorf("%w: %w", ErrNotInitialized, d.initErr)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.refs == 0 {
		if err := d.resume(); err != nil {
			return fmt.Errorf("resuming device: %w", err)
		}
	}
	d.refs++

	return nil
}

func (d *device) release() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.refs == 0 {
		return nil
	}

	d.refs--
	if d.refs == 0 {
		if err := d.suspend(); err != nil {
			return fmt.Errorf("suspending device: %w", err)
		}
	}

	return nil
}

func (d *device) active() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.refs
}
