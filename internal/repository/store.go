package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the entity repositories sharing one connection or transaction
type Repositories struct {
	Users     UserRepositoryInterface
	Teams     TeamRepositoryInterface
	Members   TeamMemberRepositoryInterface
	Coachings CoachingRepositoryInterface
}

// NewRepositories creates repositories bound to db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Teams:     NewTeamRepository(db),
		Members:   NewTeamMemberRepository(db),
		Coachings: NewCoachingRepository(db),
	}
}

// Store is the unit of work over the relational store
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (s *Store) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
