package content

import (
	"fmt"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

var _ port.ContentProvider = (*Content)(nil)

// Content serves the static marketing copy behind the five sections.
type Content struct {
	sections map[domain.Section]domain.SectionContent
}

func New() Content {
	return Content{sections: seedSections()}
}

func (c Content) SectionContent(
	s domain.Section,
) (domain.SectionContent, error) {
	const op = "Content.SectionContent"

	sc, ok := c.sections[s]
	if !ok {
		return domain.SectionContent{}, fmt.Errorf(
			"%s: %w: %q", op, domain.ErrUnknownSection, s,
		)
	}
	return sc, nil
}

func seedSections() map[domain.Section]domain.SectionContent {
	return map[domain.Section]domain.SectionContent{
		domain.SectionHome: {
			Section: domain.SectionHome,
			Title:   "Красота в деталях",
			Lead:    "Откройте для себя мир премиальной косметики и парфюмерии",
		},
		domain.SectionCatalog: {
			Section: domain.SectionCatalog,
			Title:   "Каталог",
		},
		domain.SectionAbout: {
			Section: domain.SectionAbout,
			Title:   "О бренде",
			Body: []string{
				"ÉLÉGANCE — это философия красоты, воплощенная в каждом " +
					"продукте. Мы создаем косметику и парфюмерию для тех, " +
					"кто ценит качество, изысканность и внимание к деталям.",
				"Наша миссия — дарить уверенность и подчеркивать " +
					"естественную красоту. Каждый продукт разрабатывается " +
					"с использованием премиальных ингредиентов и передовых " +
					"технологий, чтобы обеспечить максимальную " +
					"эффективность и комфорт использования.",
				"Мы сотрудничаем с ведущими европейскими лабораториями и " +
					"тщательно отбираем каждый компонент. Элегантность " +
					"упаковки отражает качество содержимого — " +
					"минималистичный дизайн и роскошные материалы создают " +
					"неповторимый опыт использования наших продуктов.",
			},
		},
		domain.SectionPromo: {
			Section: domain.SectionPromo,
			Title:   "Акции",
		},
		domain.SectionContact: {
			Section: domain.SectionContact,
			Title:   "Контакты",
			Contacts: &domain.ContactInfo{
				Address: "г. Москва, Кутузовский проспект, 48, " +
					"ТЦ \"Времена года\", 2 этаж",
				Phone: "+7 (495) 123-45-67",
				Email: "info@elegance-beauty.ru",
				Hours: "Ежедневно с 10:00 до 22:00",
			},
		},
	}
}
