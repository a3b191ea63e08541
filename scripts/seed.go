package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/infrastructure/database"
	"github.com/meetinglog-app/meetinglog/pkg/config"
)

// Seeds the default meeting templates and a starter tag set. Safe to run
// repeatedly: existing rows are matched by name and left alone.
func main() {
	log.Println("🚀 Starting seed...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	weekly := entities.NewMeetingTemplate("주간 팀 미팅",
		"지난 주 진행 상황, 이번 주 계획, 블로커를 중심으로 정리해 주세요.")
	weekly.IsDefault = true
	weeklyType := "weekly"
	weekly.MeetingType = &weeklyType

	retro := entities.NewMeetingTemplate("스프린트 회고",
		"잘한 점, 아쉬운 점, 다음 스프린트에서 시도할 개선 사항을 정리해 주세요.")
	retroType := "retrospective"
	retro.MeetingType = &retroType

	oneOnOne := entities.NewMeetingTemplate("1:1 미팅",
		"개인 목표, 피드백, 커리어 관련 논의를 정리해 주세요.")
	oneType := "one_on_one"
	oneOnOne.MeetingType = &oneType

	for _, tmpl := range []*entities.MeetingTemplate{weekly, retro, oneOnOne} {
		var existing entities.MeetingTemplate
		if err := db.Where("name = ?", tmpl.Name).First(&existing).Error; err == nil {
			log.Printf("⏭️  Template %q already exists, skipping", tmpl.Name)
			continue
		}
		if err := db.Create(tmpl).Error; err != nil {
			log.Fatalf("Failed to create template %q: %v", tmpl.Name, err)
		}
		log.Printf("✅ Created template %q", tmpl.Name)
	}

	for _, name := range []string{"기획", "개발", "디자인", "로드맵", "회고"} {
		tag := entities.NewTag(name, false)
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(tag).Error; err != nil {
			log.Fatalf("Failed to create tag %q: %v", name, err)
		}
	}
	log.Println("✅ Starter tags ensured")

	log.Println("🎉 Seed complete")
}
