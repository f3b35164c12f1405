package service

import (
	"context"
	"errors"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/database"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// SeedService bootstraps default and sample content. Every seeder is
// idempotent so the endpoints can be hit repeatedly.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// SeedAdmin ensures the default admin account exists
func (s *SeedService) SeedAdmin(ctx context.Context) (string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "SeedAdmin")

	var existing model.User
	err := s.db.WithContext(ctx).Where("email = ?", database.DefaultAdminEmail).First(&existing).Error
	if err == nil {
		return "Admin user already exists", nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := database.SeedAdminUser(s.db.WithContext(ctx)); err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return "Admin user created successfully", nil
}

// SeedServiceCategories clears existing categories and reinserts the default
// set. Unlike the other seeders this one replaces, so edits to the defaults
// can be recovered.
func (s *SeedService) SeedServiceCategories(ctx context.Context) (int, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "SeedServiceCategories")

	categories := []model.ServiceCategory{
		{
			Name:        "Payments & Custody",
			Slug:        "payments-custody",
			Description: "Comprehensive payment processing and secure custody solutions for trading companies",
			Icon:        "credit-card",
			Color:       "#3B82F6",
			Order:       0,
			IsActive:    true,
			IsDefault:   true,
		},
		{
			Name:        "FX Management",
			Slug:        "fx-management",
			Description: "Advanced foreign exchange management and currency optimization services",
			Icon:        "trending-up",
			Color:       "#10B981",
			Order:       1,
			IsActive:    true,
			IsDefault:   true,
		},
		{
			Name:        "Integration",
			Slug:        "integration",
			Description: "Seamless API integration and technical implementation services",
			Icon:        "link",
			Color:       "#F59E0B",
			Order:       2,
			IsActive:    true,
			IsDefault:   true,
		},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.ServiceCategory{}).Error; err != nil {
			return err
		}
		return tx.Create(&categories).Error
	})
	if err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Service categories seeded").
		Int("count", len(categories)).
		Log()
	return len(categories), nil
}

// SeedTeamMembers inserts the default team when no members exist yet
func (s *SeedService) SeedTeamMembers(ctx context.Context) (int, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "SeedTeamMembers")

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.TeamMember{}).Count(&count).Error; err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if count > 0 {
		return 0, nil
	}

	members := []model.TeamMember{
		{
			Name:      "Ahmed Al-Rashid",
			Position:  "CEO & Founder",
			Bio:       "Former VP at Emirates NBD with 15+ years in fintech",
			Image:     "/team/ahmed.jpg",
			LinkedIn:  "https://linkedin.com/in/ahmed-alrashid",
			Email:     "ahmed@almaspay.com",
			Order:     0,
			IsActive:  true,
			IsDefault: true,
		},
		{
			Name:      "Sarah Chen",
			Position:  "CTO",
			Bio:       "Ex-Google engineer specializing in payment systems",
			Image:     "/team/sarah.jpg",
			LinkedIn:  "https://linkedin.com/in/sarah-chen",
			Email:     "sarah@almaspay.com",
			Order:     1,
			IsActive:  true,
			IsDefault: true,
		},
		{
			Name:      "Mohammad Hassan",
			Position:  "Head of Compliance",
			Bio:       "Former regulatory advisor with deep MENA expertise",
			Image:     "/team/mohammad.jpg",
			LinkedIn:  "https://linkedin.com/in/mohammad-hassan",
			Email:     "mohammad@almaspay.com",
			Order:     2,
			IsActive:  true,
			IsDefault: true,
		},
		{
			Name:      "Lisa Wang",
			Position:  "Head of Business Development",
			Bio:       "20+ years in international trade finance",
			Image:     "/team/lisa.jpg",
			LinkedIn:  "https://linkedin.com/in/lisa-wang",
			Email:     "lisa@almaspay.com",
			Order:     3,
			IsActive:  true,
			IsDefault: true,
		},
	}

	if err := s.db.WithContext(ctx).Create(&members).Error; err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Team members seeded").
		Int("count", len(members)).
		Log()
	return len(members), nil
}

// SeedFormFields inserts the default contact form when no fields exist yet
func (s *SeedService) SeedFormFields(ctx context.Context) (int, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "SeedFormFields")

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.FormField{}).Count(&count).Error; err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if count > 0 {
		return 0, nil
	}

	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	type fieldSeed struct {
		name        string
		label       string
		fieldType   string
		placeholder string
		required    bool
		options     []dto.FieldOption
		validation  *dto.FieldValidation
	}

	seeds := []fieldSeed{
		{
			name: "fullName", label: "Full Name", fieldType: model.FieldTypeText,
			placeholder: "Your full name", required: true,
			validation: &dto.FieldValidation{MinLength: intPtr(2), MaxLength: intPtr(100)},
		},
		{
			name: "email", label: "Email Address", fieldType: model.FieldTypeEmail,
			placeholder: "your@email.com", required: true,
			validation: &dto.FieldValidation{Pattern: strPtr(`^[^@]+@[^@]+\.[^@]+$`)},
		},
		{
			name: "companyName", label: "Company Name", fieldType: model.FieldTypeText,
			placeholder: "Your company name", required: true,
			validation: &dto.FieldValidation{MinLength: intPtr(2), MaxLength: intPtr(100)},
		},
		{
			name: "phoneNumber", label: "Phone Number", fieldType: model.FieldTypeTel,
			placeholder: "+971-50-123-4567",
			validation:  &dto.FieldValidation{Pattern: strPtr(`^[+]?[0-9\s\-()]+$`)},
		},
		{
			name: "subject", label: "Subject", fieldType: model.FieldTypeSelect,
			placeholder: "Select a subject", required: true,
			options: []dto.FieldOption{
				{Label: "General Inquiry", Value: "general"},
				{Label: "Sales Question", Value: "sales"},
				{Label: "Technical Support", Value: "support"},
				{Label: "Partnership", Value: "partnership"},
				{Label: "Other", Value: "other"},
			},
		},
		{
			name: "urgencyLevel", label: "Urgency Level", fieldType: model.FieldTypeSelect,
			placeholder: "Select urgency",
			options: []dto.FieldOption{
				{Label: "Low", Value: "low"},
				{Label: "Medium", Value: "medium"},
				{Label: "High", Value: "high"},
				{Label: "Urgent", Value: "urgent"},
			},
		},
		{
			name: "preferredContactMethod", label: "Preferred Contact Method", fieldType: model.FieldTypeSelect,
			placeholder: "How would you like us to contact you?",
			options: []dto.FieldOption{
				{Label: "Email", Value: "email"},
				{Label: "Phone Call", Value: "phone"},
				{Label: "WhatsApp", Value: "whatsapp"},
				{Label: "Video Call", Value: "video"},
			},
		},
		{
			name: "message", label: "Message", fieldType: model.FieldTypeTextarea,
			placeholder: "Tell us more about your inquiry...", required: true,
			validation: &dto.FieldValidation{MinLength: intPtr(10), MaxLength: intPtr(1000)},
		},
	}

	fields := make([]model.FormField, 0, len(seeds))
	for i, seed := range seeds {
		options, err := toJSON(seed.options)
		if err != nil {
			return 0, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		validation, err := toJSON(seed.validation)
		if err != nil {
			return 0, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		fields = append(fields, model.FormField{
			Name:        seed.name,
			Label:       seed.label,
			Type:        seed.fieldType,
			Placeholder: seed.placeholder,
			Required:    seed.required,
			Options:     options,
			Validation:  validation,
			Order:       i,
			IsActive:    true,
			IsDefault:   true,
		})
	}

	if err := s.db.WithContext(ctx).Create(&fields).Error; err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Form fields seeded").
		Int("count", len(fields)).
		Log()
	return len(fields), nil
}

// SeedSampleData bootstraps the marketing site content. Each item is guarded
// by an existence check so re-runs never duplicate.
func (s *SeedService) SeedSampleData(ctx context.Context) error {
	ctx = ctxutil.WithOperation(ctx, "service", "SeedSampleData")

	if _, err := s.SeedServiceCategories(ctx); err != nil {
		return err
	}
	if _, err := s.SeedTeamMembers(ctx); err != nil {
		return err
	}
	if _, err := s.SeedFormFields(ctx); err != nil {
		return err
	}
	if err := s.seedSampleServices(ctx); err != nil {
		return err
	}
	if err := s.seedSampleCaseStudies(ctx); err != nil {
		return err
	}
	if err := s.seedSampleTestimonials(ctx); err != nil {
		return err
	}
	if err := s.seedSampleHomepageSections(ctx); err != nil {
		return err
	}
	if err := s.seedSampleLogos(ctx); err != nil {
		return err
	}

	logger.InfoWithContext(ctx, "Sample data seeded").Log()
	return nil
}

func (s *SeedService) seedSampleServices(ctx context.Context) error {
	type serviceSeed struct {
		title       string
		description string
		icon        string
		category    string
		features    []string
		pricing     string
	}

	seeds := []serviceSeed{
		{
			title:       "Payment Processing",
			description: "Fast and secure payment processing for trading",
			icon:        "credit-card",
			category:    "Payments & Custody",
			features:    []string{"Real-time processing", "Multi-currency support", "Fraud protection"},
			pricing:     "From 0.5%",
		},
		{
			title:       "FX Management",
			description: "Optimize foreign exchange rates and reduce costs",
			icon:        "trending-up",
			category:    "FX Management",
			features:    []string{"Competitive rates", "Risk management", "Real-time quotes"},
			pricing:     "From 0.3%",
		},
		{
			title:       "API Integration",
			description: "Seamless integration with your existing systems",
			icon:        "link",
			category:    "Integration",
			features:    []string{"RESTful APIs", "Webhook support", "SDK libraries"},
			pricing:     "Contact for pricing",
		},
	}

	for _, seed := range seeds {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Service{}).
			Where("title = ?", seed.title).Count(&count).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if count > 0 {
			continue
		}

		features, err := toJSON(seed.features)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		service := model.Service{
			Title:       seed.title,
			Description: seed.description,
			Icon:        seed.icon,
			Category:    seed.category,
			Features:    features,
			Pricing:     seed.pricing,
			Status:      model.ServiceStatusPublished,
			IsActive:    true,
		}
		if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return nil
}

func (s *SeedService) seedSampleCaseStudies(ctx context.Context) error {
	title := "Gulf Trading Co. - 80% Faster Settlements"

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.CaseStudy{}).
		Where("title = ?", title).Count(&count).Error; err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	metrics, err := toJSON([]dto.CaseStudyMetric{
		{Label: "Settlement Time", Value: "4 hours", Improvement: "80% faster"},
		{Label: "FX Savings", Value: "60%", Improvement: "cost reduction"},
	})
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	study := model.CaseStudy{
		Title:       title,
		Description: "How we helped Gulf Trading Co. reduce settlement times",
		ClientName:  "Gulf Trading Co.",
		Industry:    "Commodities Trading",
		Challenge:   "Manual payment processes causing 5-day settlement delays",
		Solution:    "Implemented automated payment processing with real-time FX optimization",
		Results:     "Reduced settlement time from 5 days to 4 hours, 60% reduction in FX costs",
		Metrics:     metrics,
		Status:      model.CaseStudyStatusPublished,
	}
	if err := s.db.WithContext(ctx).Create(&study).Error; err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *SeedService) seedSampleTestimonials(ctx context.Context) error {
	testimonials := []model.Testimonial{
		{
			AuthorName:     "Ahmed Al-Rashid",
			AuthorPosition: "CFO",
			AuthorCompany:  "Gulf Trading Co.",
			Content:        "Almas Pay reduced our settlement times by 80% and saved us thousands in FX fees.",
			Rating:         5,
			IsActive:       true,
		},
		{
			AuthorName:     "Sarah Chen",
			AuthorPosition: "Finance Director",
			AuthorCompany:  "Asia Pacific Imports",
			Content:        "The compliance automation features have streamlined our entire payment process.",
			Rating:         5,
			IsActive:       true,
		},
	}

	for _, testimonial := range testimonials {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Testimonial{}).
			Where("author_name = ? AND author_company = ?", testimonial.AuthorName, testimonial.AuthorCompany).
			Count(&count).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if count > 0 {
			continue
		}
		if err := s.db.WithContext(ctx).Create(&testimonial).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return nil
}

func (s *SeedService) seedSampleHomepageSections(ctx context.Context) error {
	heroMetadata, err := toJSON(map[string]string{
		"ctaPrimary":   "Get Started",
		"ctaSecondary": "Watch Demo",
	})
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	sections := []model.HomepageSection{
		{
			Title:       "Streamline Your Trading Payments Across Middle East & Asia",
			Content:     "Licensed Payment Service Provider enabling fast, secure, and compliant cross-border transactions for trading companies",
			SectionType: model.SectionTypeHero,
			IsActive:    true,
			Metadata:    heroMetadata,
		},
		{
			Title:       "Why Choose",
			Content:     "Comprehensive payment solutions built specifically for trading companies operating across Middle East and Asia.",
			SectionType: model.SectionTypeFeatures,
			IsActive:    true,
		},
		{
			Title:       "Our Team",
			Content:     "Almas pay is led by a strong and diverse team with proven track records in both traditional finance and emerging financial technologies. Collectively, we bring experience from leading global banks, capital markets institutions, and fintech innovators, ensuring a deep understanding of how money and value move across borders.",
			SectionType: model.SectionTypeTeamExpertise,
			IsActive:    true,
		},
	}

	for _, section := range sections {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.HomepageSection{}).
			Where("section_type = ?", section.SectionType).Count(&count).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if count > 0 {
			continue
		}
		if err := s.db.WithContext(ctx).Create(&section).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return nil
}

func (s *SeedService) seedSampleLogos(ctx context.Context) error {
	type logoSeed struct {
		name         string
		description  string
		imageURL     string
		thumbnailURL string
		category     string
		isDefault    bool
		altText      string
		tags         []string
		size         dto.LogoSize
	}

	seeds := []logoSeed{
		{
			name:         "Almas Pay Main Logo",
			description:  "Primary logo for website header and main branding",
			imageURL:     "https://via.placeholder.com/200x60/1e40af/ffffff?text=ALMAS+PAY",
			thumbnailURL: "https://via.placeholder.com/100x30/1e40af/ffffff?text=ALMAS+PAY",
			category:     model.LogoCategoryMain,
			isDefault:    true,
			altText:      "Almas Pay Logo",
			tags:         []string{"main", "header", "primary"},
			size:         dto.LogoSize{Width: 200, Height: 60},
		},
		{
			name:         "Almas Pay Footer Logo",
			description:  "Logo for website footer",
			imageURL:     "https://via.placeholder.com/150x45/374151/ffffff?text=ALMAS+PAY",
			thumbnailURL: "https://via.placeholder.com/75x22/374151/ffffff?text=ALMAS+PAY",
			category:     model.LogoCategoryFooter,
			isDefault:    true,
			altText:      "Almas Pay Footer Logo",
			tags:         []string{"footer", "secondary"},
			size:         dto.LogoSize{Width: 150, Height: 45},
		},
		{
			name:         "Almas Pay Favicon",
			description:  "Small icon for browser tabs",
			imageURL:     "https://via.placeholder.com/32x32/1e40af/ffffff?text=AP",
			thumbnailURL: "https://via.placeholder.com/16x16/1e40af/ffffff?text=AP",
			category:     model.LogoCategoryFavicon,
			isDefault:    true,
			altText:      "Almas Pay Favicon",
			tags:         []string{"favicon", "icon"},
			size:         dto.LogoSize{Width: 32, Height: 32},
		},
		{
			name:         "Almas Pay Admin Logo",
			description:  "Logo for admin panel",
			imageURL:     "https://via.placeholder.com/180x54/7c3aed/ffffff?text=ALMAS+PAY+ADMIN",
			thumbnailURL: "https://via.placeholder.com/90x27/7c3aed/ffffff?text=ADMIN",
			category:     model.LogoCategoryAdmin,
			isDefault:    true,
			altText:      "Almas Pay Admin Logo",
			tags:         []string{"admin", "dashboard"},
			size:         dto.LogoSize{Width: 180, Height: 54},
		},
		{
			name:         "Almas Pay Alternative Logo",
			description:  "Alternative logo design option",
			imageURL:     "https://via.placeholder.com/200x60/059669/ffffff?text=ALMAS+PAY+ALT",
			thumbnailURL: "https://via.placeholder.com/100x30/059669/ffffff?text=ALT",
			category:     model.LogoCategoryMain,
			isDefault:    false,
			altText:      "Almas Pay Alternative Logo",
			tags:         []string{"alternative", "option"},
			size:         dto.LogoSize{Width: 200, Height: 60},
		},
	}

	for _, seed := range seeds {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Logo{}).
			Where("name = ? AND category = ?", seed.name, seed.category).
			Count(&count).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if count > 0 {
			continue
		}

		tags, err := toJSON(seed.tags)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		size, err := toJSON(seed.size)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}

		logo := model.Logo{
			Name:         seed.name,
			Description:  seed.description,
			ImageURL:     seed.imageURL,
			ThumbnailURL: seed.thumbnailURL,
			Category:     seed.category,
			IsDefault:    seed.isDefault,
			IsActive:     true,
			AltText:      seed.altText,
			Tags:         tags,
			Size:         size,
		}
		if err := s.db.WithContext(ctx).Create(&logo).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return nil
}

// ClearSampleData removes seeded content. Users, categories, team members,
// form fields and logos survive the teardown.
func (s *SeedService) ClearSampleData(ctx context.Context) error {
	ctx = ctxutil.WithOperation(ctx, "service", "ClearSampleData")

	targets := []interface{}{
		&model.Service{},
		&model.CaseStudy{},
		&model.ContactSubmission{},
		&model.Testimonial{},
		&model.HomepageSection{},
	}
	for _, target := range targets {
		if err := s.db.WithContext(ctx).Where("1 = 1").Delete(target).Error; err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}

	logger.InfoWithContext(ctx, "Sample data cleared").Log()
	return nil
}
