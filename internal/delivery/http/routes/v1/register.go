package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/handler"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

// Deps carries the wired collaborators from the application container into
// the route tree.
type Deps struct {
	DB      database.DB
	Analyze usecase.AnalyzeUsecase
	Match   usecase.MatchUsecase
	Rank    usecase.RankUsecase
	Report  usecase.ReportUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	analyzeHandler := handler.NewAnalyzeHandler(deps.Analyze)
	matchHandler := handler.NewMatchHandler(deps.Match)
	rankHandler := handler.NewRankHandler(deps.Rank)
	reportHandler := handler.NewReportHandler(deps.Report)

	resumesGroup := r.Group("/resumes")
	analyzeHandler.RegisterRoutes(resumesGroup)

	matchesGroup := r.Group("/matches")
	matchHandler.RegisterRoutes(matchesGroup)

	jobsGroup := r.Group("/jobs")
	rankHandler.RegisterRoutes(jobsGroup)
	reportHandler.RegisterRoutes(jobsGroup)
}
