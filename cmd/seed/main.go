package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	dbpkg "github.com/Lis-Kacper/BeautySaloon/internal/db"
	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	infraRepo "github.com/Lis-Kacper/BeautySaloon/internal/infra/repository"
	"github.com/Lis-Kacper/BeautySaloon/internal/logging"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
	"github.com/Lis-Kacper/BeautySaloon/internal/timezone"
)

var names = []string{
	"Jan Kowalski", "Anna Nowak", "Piotr Zielinski", "Katarzyna Wisniewska", "Marek Lewandowski",
	"Agnieszka Wojcik", "Tomasz Kaminski", "Ewa Kaczmarek", "Pawel Mazur", "Magdalena Dabrowska",
	"Kamil Jablonski", "Joanna Krol", "Michal Pawlak", "Aleksandra Szymanska", "Grzegorz Baran",
	"Karolina Gorska", "Lukasz Rutkowski", "Natalia Sikora", "Marcin Piatek", "Patrycja Lis",
}

var services = []domain.Service{
	domain.ServiceWaxing,
	domain.ServiceManicure,
	domain.ServiceMassage,
}

// Fills the calendar with random future appointments for manual
// testing of the booking UI. Inserts go through the same CreateIfFree
// path as real bookings, so the seed can never double-book.
func main() {
	count := flag.Int("count", 20, "number of appointments to create")
	days := flag.Int("days", 21, "how many days ahead to spread them over")
	flag.Parse()

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)
	repo := infraRepo.NewAppointmentGormRepository(db)

	window := domain.Window{
		Open:  fmt.Sprintf("%02d:00", cfg.OpenHour),
		Close: fmt.Sprintf("%02d:00", cfg.CloseHour),
		Slot:  cfg.SlotDuration(),
	}
	today := timezone.NowIn(cfg.Timezone)

	slotsPerDay := (cfg.CloseHour - cfg.OpenHour) * 60 / cfg.SlotMinutes

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	used := make(map[string]bool)

	created := 0
	for i := 0; i < *count; i++ {

		var dayOffset, slotIdx int
		var slotKey string
		for {
			dayOffset = 1 + rng.Intn(*days)
			slotIdx = rng.Intn(slotsPerDay)
			slotKey = fmt.Sprintf("%d-%d", dayOffset, slotIdx)
			if !used[slotKey] {
				break
			}
		}
		used[slotKey] = true

		day := today.AddDate(0, 0, dayOffset)
		dayStart, _ := window.Bounds(day)

		start := dayStart.Add(time.Duration(slotIdx) * window.Slot)
		end := start.Add(window.Slot)

		name := names[i%len(names)]
		email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.com"
		phone := fmt.Sprintf("500100%d", 100+i)

		ap := &models.Appointment{
			Name:      name,
			Email:     email,
			Phone:     phone,
			Service:   string(services[rng.Intn(len(services))]),
			StartTime: start,
			EndTime:   end,
		}

		if err := repo.CreateIfFree(context.Background(), ap); err != nil {
			log.Warn().Err(err).Time("start", start).Msg("skipping occupied slot")
			continue
		}
		created++
	}

	log.Info().Int("created", created).Msg("seed finished")
}
