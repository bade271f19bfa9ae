package render

import "sync"

// Container is the mount point of the dashboard chart: it keeps the last image drawn into it.
type Container struct {
	mu          sync.RWMutex
	image       []byte
	contentType string
	version     int
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Image returns a copy of the mounted image, its content type and its version.
// ok is false until a chart has been drawn.
func (c *Container) Image() (img []byte, contentType string, version int, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.image == nil {
		return nil, "", 0, false
	}
	out := make([]byte, len(c.image))
	copy(out, c.image)
	return out, c.contentType, c.version, true
}

func (c *Container) mount(img []byte, contentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = append([]byte(nil), img...)
	c.contentType = contentType
	c.version++
}
