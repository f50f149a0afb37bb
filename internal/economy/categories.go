package economy

import "strings"

// AddCategory appends a category if it is not already present. Categories
// are insertion-ordered for display and never removed.
func (e *Engine) AddCategory(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, c := range e.categories {
		if c == name {
			return false, nil
		}
	}
	e.categories = append(e.categories, name)
	return true, e.persist()
}

// ensureCategoryLocked registers a category on first use and returns the
// trimmed name. Callers must hold the lock.
func (e *Engine) ensureCategoryLocked(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, c := range e.categories {
		if c == name {
			return name
		}
	}
	e.categories = append(e.categories, name)
	return name
}

// Categories returns the category list in insertion order.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.categories))
	copy(out, e.categories)
	return out
}
