package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-dashboard-service/internal/config"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/events"
	"github.com/spec-kit/hr-dashboard-service/internal/repository"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// departmentCatalog is the fixed list seeded at bootstrap.
var departmentCatalog = []string{
	"الموارد البشرية",
	"المحاسبة والمالية",
	"الإدارة العامة",
	"التأمين والمخاطر",
	"المبيعات والتسويق",
	"العمليات والإنتاج",
	"الشؤون القانونية",
	"خدمة العملاء",
	"التطوير والبحث",
	"تكنولوجيا المعلومات",
	"تطوير التطبيقات",
	"هندسة البرمجيات",
	"أمن المعلومات والسايبر",
	"الشبكات والبنية التحتية",
	"إدارة قواعد البيانات",
	"الذكاء الاصطناعي وتعلم الآلة",
	"علوم البيانات والتحليل",
	"اختبار وضمان الجودة QA",
	"الدعم التقني والصيانة",
	"إدارة المشاريع التقنية",
}

var seedNames = []string{
	"أحمد محمد الأحمدي", "فاطمة علي السعدي", "محمود حسن القحطاني",
	"نورا سعد العتيبي", "خالد أحمد المطيري", "سارة عبدالله الدوسري",
	"عبدالعزيز محمد الزهراني", "هدى عبدالرحمن الشهري", "يوسف علي الغامدي",
	"ريم خالد العنزي", "عمر عبدالله الحربي", "نادية محمد الجهني",
	"إبراهيم سعد البقمي", "منى حسن الفيصل", "طارق عبدالعزيز السبيعي",
}

var seedPositions = []string{
	"مدير عام", "رئيس قسم", "مشرف أول", "منسق إداري",
	"مدير مالي", "محاسب أول", "محاسب", "محلل مالي",
	"مدير موارد بشرية", "أخصائي موارد بشرية", "أخصائي تدريب وتطوير",
	"مهندس برمجيات أول", "مهندس برمجيات", "مطور تطبيقات",
	"عالم بيانات", "محلل بيانات", "مهندس ذكاء اصطناعي",
	"محلل أمن سيبراني", "مهندس شبكات", "مهندس QA",
	"فني دعم تقني",
}

var seedEducationLevels = []string{
	"دكتوراه في علوم الحاسب",
	"ماجستير علوم حاسب", "ماجستير إدارة أعمال MBA", "ماجستير أمن سيبراني",
	"بكالوريوس علوم حاسب", "بكالوريوس هندسة برمجيات", "بكالوريوس نظم معلومات",
	"بكالوريوس محاسبة",
	"دبلوم تقني في الشبكات", "دبلوم البرمجة والتطوير",
	"AWS Solutions Architect Associate", "CCNA - سيسكو مشارك",
	"PMP - إدارة المشاريع المعتمدة",
}

// SeedService populates fixture data. Both steps are idempotent: departments
// insert-if-absent, employees only when the table is empty.
type SeedService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	cfg         config.SeedConfig
	rng         *rand.Rand
}

// NewSeedService constructs the service.
func NewSeedService(departments repository.DepartmentRepository, employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.SeedConfig) *SeedService {
	return &SeedService{
		departments: departments,
		employees:   employees,
		dispatcher:  dispatcher,
		logger:      logger,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed inserts the department catalog and, when no employees exist yet,
// generates synthetic employee rows. A second call is a no-op for employees.
func (s *SeedService) Seed(ctx context.Context) error {
	for _, name := range departmentCatalog {
		if err := s.departments.InsertIfAbsent(ctx, name); err != nil {
			return apperrors.MapError(err)
		}
	}

	count, err := s.employees.Count(ctx)
	if err != nil {
		return apperrors.MapError(err)
	}
	if count > 0 {
		s.logger.Info("employee table already populated; skipping fixtures", zap.Int64("count", count))
		return nil
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return apperrors.MapError(err)
	}
	if len(departments) == 0 {
		s.logger.Warn("no departments available; skipping employee fixtures")
		return nil
	}

	seeded := 0
	for i := 0; i < s.cfg.EmployeeCount; i++ {
		emp := s.randomEmployee(departments)
		if err := s.employees.Create(ctx, emp); err != nil {
			return apperrors.MapError(err)
		}
		seeded++
	}

	s.logger.Info("seeded employee fixtures", zap.Int("count", seeded))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSeedCompleted,
			Timestamp: time.Now(),
			Payload: events.SeedCompletedPayload{
				DepartmentsSeeded: len(departmentCatalog),
				EmployeesSeeded:   seeded,
			},
		})
	}
	return nil
}

func (s *SeedService) randomEmployee(departments []domain.Department) *domain.Employee {
	dept := departments[s.rng.Intn(len(departments))]
	position := seedPositions[s.rng.Intn(len(seedPositions))]
	education := seedEducationLevels[s.rng.Intn(len(seedEducationLevels))]

	salary := baseSalary(position, education) + float64(s.rng.Intn(3000))
	age := 22 + s.rng.Intn(38)

	gender := domain.GenderMale
	if s.rng.Float64() > 0.55 {
		gender = domain.GenderFemale
	}

	hireDate := time.Now().AddDate(-4, 0, 0).AddDate(0, 0, s.rng.Intn(4*365))
	hireDate = hireDate.Truncate(24 * time.Hour)

	return &domain.Employee{
		Name:         seedNames[s.rng.Intn(len(seedNames))],
		DepartmentID: dept.ID,
		Position:     position,
		HireDate:     hireDate,
		Education:    education,
		Age:          &age,
		Salary:       &salary,
		Gender:       string(gender),
		IsActive:     true,
		AbsenceDays:  s.rng.Intn(25),
	}
}

func baseSalary(position, education string) float64 {
	base := 4000.0
	switch {
	case containsAny(position, "مدير"):
		base = 12000
	case containsAny(position, "رئيس", "أول"):
		base = 8000
	case containsAny(position, "أخصائي"):
		base = 6000
	}
	if containsAny(education, "دكتوراه") {
		base += 2000
	} else if containsAny(education, "ماجستير") {
		base += 1000
	}
	return base
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
