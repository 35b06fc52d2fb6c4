package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/repository"
)

// SeederService prepares the store schema and demo catalog at startup
type SeederService struct {
	store    database.Store
	packages PackageRepository
}

// NewSeederService creates a new seeder service
func NewSeederService(store database.Store, packages PackageRepository) *SeederService {
	return &SeederService{store: store, packages: packages}
}

// EnsureSchema creates every table the API uses
func (s *SeederService) EnsureSchema(ctx context.Context) error {
	tables := []string{
		repository.TableUsers,
		repository.TablePreferences,
		repository.TableTravelPackages,
		repository.TableBookings,
		repository.TableSavedPackages,
	}
	for _, table := range tables {
		if err := s.store.EnsureTable(ctx, table); err != nil {
			return fmt.Errorf("failed to ensure table %s: %w", table, err)
		}
	}
	return nil
}

// SeedTravelPackages inserts the demo catalog when the table is empty
func (s *SeederService) SeedTravelPackages(ctx context.Context) error {
	count, err := s.store.Count(ctx, repository.TableTravelPackages)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("travel packages already present, skipping seed",
			slog.Int("count", count),
		)
		return nil
	}

	for _, pkg := range demoPackages() {
		if _, err := s.packages.Create(ctx, pkg); err != nil {
			return fmt.Errorf("failed to seed package %s: %w", pkg.ID, err)
		}
	}

	slog.Info("seeded demo travel packages", slog.Int("count", len(demoPackages())))
	return nil
}

// demoPackages is the demo catalog shipped with a fresh install
func demoPackages() []*model.TravelPackage {
	return []*model.TravelPackage{
		{
			ID:                "1",
			Title:             "Weekend Culturale a Roma",
			Description:       "Un weekend alla scoperta della città eterna",
			Destination:       "Roma",
			ImageURL:          "https://images.unsplash.com/photo-1499678329028-101435549a4e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.5",
			ReviewCount:       120,
			AccommodationName: "Hotel Artemide 4★",
			AccommodationType: "Hotel",
			TransportType:     "Volo A/R da Milano",
			DurationDays:      3,
			DurationNights:    2,
			Experiences: []string{
				"Visita guidata ai Musei Vaticani",
				"Tour gastronomico di Trastevere",
				"Biglietti salta-fila per il Colosseo",
			},
			Price:         650,
			IsRecommended: true,
			Categories:    []string{"Storia e Arte", "Enogastronomia", "Vita Locale"},
		},
		{
			ID:                "2",
			Title:             "Relax e Cultura in Toscana",
			Description:       "Un soggiorno rilassante immersi nella campagna toscana",
			Destination:       "Toscana",
			ImageURL:          "https://images.unsplash.com/photo-1534445867742-43195f401b6c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.0",
			ReviewCount:       98,
			AccommodationName: "Agriturismo Il Poggio",
			AccommodationType: "Agriturismo",
			TransportType:     "Auto a noleggio",
			DurationDays:      5,
			DurationNights:    4,
			Experiences: []string{
				"Degustazione vini a Montalcino",
				"Visita guidata di Siena",
				"Corso di cucina toscana",
			},
			Price:         780,
			IsRecommended: false,
			Categories:    []string{"Enogastronomia", "Salute e Benessere", "Vita Locale"},
		},
		{
			ID:                "3",
			Title:             "Mare e Cultura in Costiera",
			Description:       "Un viaggio alla scoperta della costiera amalfitana",
			Destination:       "Costiera Amalfitana",
			ImageURL:          "https://images.unsplash.com/photo-1516483638261-f4dbaf036963?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.8",
			ReviewCount:       156,
			AccommodationName: "Hotel Belvedere 4★",
			AccommodationType: "Hotel",
			TransportType:     "Treno A/R da Roma",
			DurationDays:      6,
			DurationNights:    5,
			Experiences: []string{
				"Tour in barca di Capri",
				"Visita agli scavi di Pompei",
				"Lezione di cucina napoletana",
			},
			Price:         950,
			IsRecommended: false,
			Categories:    []string{"Storia e Arte", "Enogastronomia", "Vita Locale"},
		},
		{
			ID:                "4",
			Title:             "Avventura nelle Dolomiti",
			Description:       "Un'esperienza indimenticabile immersi nella natura",
			Destination:       "Dolomiti",
			ImageURL:          "https://images.unsplash.com/photo-1503614472-8c93d56e92ce?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.7",
			ReviewCount:       89,
			AccommodationName: "Mountain Lodge",
			AccommodationType: "Rifugio",
			TransportType:     "Auto propria",
			DurationDays:      4,
			DurationNights:    3,
			Experiences: []string{
				"Escursione guidata sul Monte Cristallo",
				"Mountain bike nei sentieri alpini",
				"Corso base di arrampicata",
			},
			Price:         580,
			IsRecommended: false,
			Categories:    []string{"Sport", "Salute e Benessere"},
		},
		{
			ID:                "5",
			Title:             "Benessere in Umbria",
			Description:       "Relax e natura nel cuore verde d'Italia",
			Destination:       "Umbria",
			ImageURL:          "https://images.unsplash.com/photo-1531816458010-fb7685eecbcb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.6",
			ReviewCount:       102,
			AccommodationName: "Borgo Spa Resort",
			AccommodationType: "Resort",
			TransportType:     "Auto a noleggio",
			DurationDays:      5,
			DurationNights:    4,
			Experiences: []string{
				"Percorso benessere con massaggio",
				"Yoga all'alba tra gli ulivi",
				"Escursione nei borghi medievali",
			},
			Price:         870,
			IsRecommended: true,
			Categories:    []string{"Salute e Benessere", "Vita Locale"},
		},
		{
			ID:                "6",
			Title:             "Food Tour in Emilia Romagna",
			Description:       "Un percorso gastronomico nella patria del gusto italiano",
			Destination:       "Emilia Romagna",
			ImageURL:          "https://images.unsplash.com/photo-1528795259021-d8c86e14354c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
			Rating:            "4.9",
			ReviewCount:       135,
			AccommodationName: "Palazzo del Gusto",
			AccommodationType: "B&B",
			TransportType:     "Treno A/R da Milano",
			DurationDays:      4,
			DurationNights:    3,
			Experiences: []string{
				"Visita a un caseificio di Parmigiano Reggiano",
				"Corso di pasta fresca fatta in casa",
				"Tour con degustazione in acetaia tradizionale",
			},
			Price:         720,
			IsRecommended: true,
			Categories:    []string{"Enogastronomia", "Vita Locale"},
		},
	}
}
