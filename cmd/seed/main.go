package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustavoml12/GrupoUnion/internal/config"
	"github.com/gustavoml12/GrupoUnion/internal/database"
	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data, children first so foreign keys do not complain.
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"quiz_answers", "quiz_options", "quiz_questions",
		"video_progress", "onboarding_videos",
		"notifications", "referrals", "visits",
		"meeting_attendees", "collective_meetings", "meetings",
		"payments", "members", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	now := time.Now().UTC()

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := domain.User{
		Email:        "admin@grupounion.com.br",
		PasswordHash: hash("admin123"),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		FullName:     "Administrador",
	}
	db.Create(&admin)

	hub := domain.User{
		Email:        "hub@grupounion.com.br",
		PasswordHash: hash("hub12345"),
		Role:         domain.RoleHub,
		Status:       domain.UserActive,
		FullName:     "Equipe Hub",
	}
	db.Create(&hub)

	ana := domain.User{
		Email:        "ana@techsolutions.com.br",
		PasswordHash: hash("membro123"),
		Role:         domain.RoleMember,
		Status:       domain.UserActive,
		FullName:     "Ana Oliveira",
		Phone:        "+55 67 99901-0001",
	}
	db.Create(&ana)

	bruno := domain.User{
		Email:        "bruno@construforte.com.br",
		PasswordHash: hash("membro123"),
		Role:         domain.RoleMember,
		Status:       domain.UserActive,
		FullName:     "Bruno Costa",
		Phone:        "+55 67 99901-0002",
		ReferredByID: &ana.ID,
	}
	db.Create(&bruno)

	carla := domain.User{
		Email:        "carla@saborcaseiro.com.br",
		PasswordHash: hash("visita123"),
		Role:         domain.RoleVisitor,
		Status:       domain.UserPending,
		FullName:     "Carla Mendes",
		Phone:        "+55 67 99901-0003",
		ReferredByID: &ana.ID,
	}
	db.Create(&carla)

	log.Println("Admin: admin@grupounion.com.br / admin123")
	log.Println("Hub:   hub@grupounion.com.br / hub12345")

	// ================== MEMBERS ==================
	log.Println("Creating member profiles...")

	anaMember := domain.Member{
		UserID:             ana.ID,
		CompanyName:        "Tech Solutions",
		BusinessCategory:   domain.CategoryTecnologia,
		CompanyDescription: "Desenvolvimento de software sob medida para pequenas empresas.",
		Website:            "https://techsolutions.com.br",
		BusinessPhone:      "+55 67 3321-0001",
		BusinessEmail:      "contato@techsolutions.com.br",
		City:               "Campo Grande",
		State:              "MS",
		Status:             domain.MemberActive,
		Bio:                "Empreendedora na área de tecnologia há 12 anos, apaixonada por conectar negócios.",
		LinkedinURL:        "https://linkedin.com/in/anaoliveira",
		Interests:          "tecnologia, inovação, networking",
		Skills:             "desenvolvimento web, gestão de projetos",
		ReputationScore:    100,
		ApprovedAt:         &now,
		ApprovedBy:         &admin.ID,
	}
	db.Create(&anaMember)

	brunoMember := domain.Member{
		UserID:           bruno.ID,
		CompanyName:      "Construforte Engenharia",
		BusinessCategory: domain.CategoryConstrucao,
		City:             "Campo Grande",
		State:            "MS",
		Status:           domain.MemberActive,
		ReputationScore:  100,
		ApprovedAt:       &now,
		ApprovedBy:       &admin.ID,
	}
	db.Create(&brunoMember)

	carlaMember := domain.Member{
		UserID:            carla.ID,
		CompanyName:       "Sabor Caseiro",
		BusinessCategory:  domain.CategoryAlimentacao,
		Status:            domain.MemberPaymentPending,
		ApplicationReason: "Quero ampliar minha rede de contatos e fechar novas parcerias.",
		ReputationScore:   100,
	}
	db.Create(&carlaMember)

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")

	due := now.AddDate(0, 0, 7)
	db.Create(&domain.Payment{
		UserID:      carla.ID,
		PaymentType: domain.PaymentOnboarding,
		Amount:      197.00,
		Status:      domain.PaymentPending,
		PixKey:      "64981211030",
		DueDate:     &due,
	})

	verified := now.AddDate(0, -1, 0)
	db.Create(&domain.Payment{
		UserID:      ana.ID,
		PaymentType: domain.PaymentOnboarding,
		Amount:      197.00,
		Status:      domain.PaymentVerified,
		PixKey:      "64981211030",
		VerifiedBy:  &admin.ID,
		VerifiedAt:  &verified,
	})

	// ================== MEETINGS ==================
	log.Println("Creating meetings...")

	nextWeek := now.AddDate(0, 0, 7).Truncate(time.Hour).Add(10 * time.Hour)
	db.Create(&domain.Meeting{
		MemberID:        anaMember.ID,
		ScheduledByID:   &ana.ID,
		MeetingType:     domain.MeetingOnline,
		ScheduledDate:   nextWeek,
		DurationMinutes: 60,
		Status:          domain.MeetingPending,
		MemberNotes:     "Gostaria de apresentar um novo projeto.",
	})

	collective := domain.CollectiveMeeting{
		Title:           "Reunião Mensal de Networking",
		Description:     "Encontro mensal de todos os membros do grupo.",
		MeetingType:     domain.MeetingPresencial,
		ScheduledDate:   now.AddDate(0, 0, 14),
		DurationMinutes: 120,
		Location:        "Sede do Grupo Union",
		Status:          domain.CollectiveAgendada,
		CreatedByID:     hub.ID,
		TotalInvited:    2,
	}
	db.Create(&collective)
	db.Create(&domain.CollectiveMeetingAttendee{MeetingID: collective.ID, MemberID: anaMember.ID})
	db.Create(&domain.CollectiveMeetingAttendee{MeetingID: collective.ID, MemberID: brunoMember.ID})

	// ================== VISITS ==================
	log.Println("Creating visits...")

	db.Create(&domain.Visit{
		VisitorID:       anaMember.ID,
		VisitedID:       brunoMember.ID,
		Purpose:         domain.VisitConhecerServicos,
		VisitDate:       now.AddDate(0, 0, 3),
		DurationMinutes: 60,
		Location:        "Escritório da Construforte",
		Status:          domain.VisitAgendada,
		VisitorNotes:    "Quero conhecer os serviços de engenharia para indicar a clientes.",
	})

	// ================== REFERRALS ==================
	log.Println("Creating referrals...")

	db.Create(&domain.Referral{
		FromMemberID:  anaMember.ID,
		ToMemberID:    brunoMember.ID,
		ClientName:    "Marcos Pereira",
		ClientCompany: "Pereira Imóveis",
		ClientPhone:   "+55 67 99888-0010",
		Qualification: domain.QualificationHot,
		Context:       "Cliente precisa de reforma completa no escritório até o fim do ano.",
		ClientNeed:    "Reforma comercial",
		Status:        domain.ReferralPending,
	})

	// ================== ONBOARDING VIDEOS ==================
	log.Println("Creating onboarding videos and quiz...")

	duration := 8
	video1 := domain.OnboardingVideo{
		Title:           "Bem-vindo ao Grupo Union",
		Description:     "Conheça a história e os valores do grupo.",
		VideoURL:        "https://www.youtube.com/watch?v=uniao-boas-vindas",
		Provider:        domain.ProviderYoutube,
		Order:           1,
		IsActive:        true,
		DurationMinutes: &duration,
	}
	db.Create(&video1)

	video2 := domain.OnboardingVideo{
		Title:    "Como funcionam as indicações",
		VideoURL: "https://www.youtube.com/watch?v=uniao-indicacoes",
		Provider: domain.ProviderYoutube,
		Order:    2,
		IsActive: true,
	}
	db.Create(&video2)

	question := domain.QuizQuestion{
		VideoID:      video1.ID,
		QuestionText: "Qual o valor da taxa de adesão do Grupo Union?",
		Order:        1,
		IsActive:     true,
	}
	db.Create(&question)
	db.Create(&domain.QuizOption{QuestionID: question.ID, OptionText: "R$ 100,00", Order: 1})
	db.Create(&domain.QuizOption{QuestionID: question.ID, OptionText: "R$ 197,00", IsCorrect: true, Order: 2})
	db.Create(&domain.QuizOption{QuestionID: question.ID, OptionText: "R$ 250,00", Order: 3})

	db.Create(&domain.VideoProgress{UserID: carla.ID, VideoID: video1.ID})

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")

	db.Create(&domain.Notification{
		UserID:   carla.ID,
		Type:     domain.NotifSystemAnnouncement,
		Priority: domain.PriorityNormal,
		Title:    "Bem-vinda ao Grupo Union!",
		Message:  "Complete seu cadastro e envie o comprovante de pagamento para se tornar membro.",
	})

	log.Println("Seed completed.")
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
