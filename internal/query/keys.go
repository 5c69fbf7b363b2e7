package query

import "strconv"

const keySep = "|"

// Key derives a cache key from a resource name and its serialized
// parameters. An empty parameter string keys the bare listing.
func Key(resource, params string) string {
	if params == "" {
		return resource
	}
	return resource + keySep + params
}

// DetailKey keys a single-entity fetch.
func DetailKey(resource string, id int64) string {
	return Key(resource, "id="+strconv.FormatInt(id, 10))
}
