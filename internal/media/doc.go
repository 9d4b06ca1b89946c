// Package media defines the movie and user entities, their validation
// rules, and the watch-status enum. Entities carry their JSON shape
// directly; managers own every mutation beyond simple field updates.
package media
