package service

import "fmt"

// Version is the application version reported by GET /version and the version command.
const Version = "1.0.0"

// DefaultGreetingName is used when no name is supplied.
const DefaultGreetingName = "World"

const greetingFormat = "Hello, %s! Welcome to DevOps CI/CD Demo."

// Greet returns the greeting for name, falling back to DefaultGreetingName when name is empty.
// The name is used as given; no trimming or escaping (responses are text/plain).
func Greet(name string) string {
	if name == "" {
		name = DefaultGreetingName
	}
	return fmt.Sprintf(greetingFormat, name)
}
