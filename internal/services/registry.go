package services

import (
	"sync"

	"github.com/anonto42/nano-midea/relations/internal/populate"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/anonto42/nano-midea/relations/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Backends are the shared connections every store is built on
type Backends struct {
	SQL          *gorm.DB
	Mongo        *mongo.Database
	MessageStore string
}

// Registry hands out the process-wide services. Each service is built on first
// use and the same instance is returned afterwards. Create one Registry at
// startup and pass it to whatever needs a service.
type Registry struct {
	backends Backends

	resolverOnce sync.Once
	resolver     *populate.Resolver

	followOnce sync.Once
	follows    *FollowService

	bookmarkOnce sync.Once
	bookmarks    *BookmarkService

	dislikeOnce sync.Once
	dislikes    *DislikeService

	messageOnce sync.Once
	messages    *MessageService
}

func NewRegistry(b Backends) *Registry {
	return &Registry{backends: b}
}

func (r *Registry) Resolver() *populate.Resolver {
	r.resolverOnce.Do(func() {
		r.resolver = populate.NewResolver(
			repositories.NewPostgresUserRepository(r.backends.SQL),
			repositories.NewMongoPostRepository(r.backends.Mongo),
		)
	})
	return r.resolver
}

func (r *Registry) Follows() *FollowService {
	r.followOnce.Do(func() {
		r.follows = NewFollowService(repositories.NewPostgresFollowRepository(r.backends.SQL), r.Resolver())
	})
	return r.follows
}

func (r *Registry) Bookmarks() *BookmarkService {
	r.bookmarkOnce.Do(func() {
		r.bookmarks = NewBookmarkService(repositories.NewPostgresBookmarkRepository(r.backends.SQL), r.Resolver())
	})
	return r.bookmarks
}

func (r *Registry) Dislikes() *DislikeService {
	r.dislikeOnce.Do(func() {
		r.dislikes = NewDislikeService(repositories.NewPostgresDislikeRepository(r.backends.SQL), r.Resolver())
	})
	return r.dislikes
}

// Messages returns the message service on the store selected by
// Backends.MessageStore; anything but "postgres" means MongoDB.
func (r *Registry) Messages() *MessageService {
	r.messageOnce.Do(func() {
		var repo repositories.MessageRepository
		if r.backends.MessageStore == config.MessageStorePostgres {
			repo = repositories.NewPostgresMessageRepository(r.backends.SQL)
		} else {
			repo = repositories.NewMongoMessageRepository(r.backends.Mongo)
		}
		r.messages = NewMessageService(repo)
	})
	return r.messages
}
