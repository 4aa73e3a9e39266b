package postgres

import (
	repo "github.com/sayalimunde/mini-lms/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users   repo.Users
	Courses repo.Courses
	Lessons repo.Lessons
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:   &usersRepo{pool},
		Courses: &coursesRepo{pool},
		Lessons: &lessonsRepo{pool},
	}
}
