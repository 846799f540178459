package ports

import "go.trai.ch/xtask/internal/core/domain"

// Reporter presents a build result to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(tool string, res *domain.BuildResult) error
}
