package sqlite

import "strings"

type Config struct {
	file        string
	capacity    int
	capacitySet bool
	durable     bool
}

type ConfigFunc = func(c *Config)

// WithFile sets the database file. Use ":memory:" for a throwaway in-memory
// database.
func WithFile(file string) ConfigFunc {
	file = strings.TrimSpace(file)
	if file == "" {
		panic("file can't be blank")
	}
	if strings.Contains(file, "?") {
		panic("file can't contain ?")
	}
	return func(c *Config) {
		c.file = file
	}
}

// WithCapacity sets the number of slots. For an existing database the value
// must match the capacity it was created with.
func WithCapacity(capacity int) ConfigFunc {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return func(c *Config) {
		c.capacity = capacity
		c.capacitySet = true
	}
}

// WithDurable makes every write wait for a full fsync. Slower, but survives
// power loss.
func WithDurable(durable bool) ConfigFunc {
	return func(c *Config) {
		c.durable = durable
	}
}
