package api

import (
	"time"

	"github.com/samber/lo"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/models"
)

// View projections select the fields a given caller may see for a resource.
// Each (role, resource) pair has an explicit function rather than field-level
// annotations, so the visibility rules live in one place.

type studentRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Year  string `json:"year"`
}

type projectRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Year  string `json:"year"`
}

type technologyView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
}

type projectPublicView struct {
	ID               uint             `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Images           []string         `json:"images,omitempty"`
	MainImage        string           `json:"mainImage,omitempty"`
	Year             string           `json:"year"`
	LiveURL          string           `json:"liveUrl,omitempty"`
	GithubURL        string           `json:"githubUrl,omitempty"`
	Students         []studentRef     `json:"students"`
	Technologies     []technologyView `json:"technologies"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type projectAdminView struct {
	projectPublicView
	Status    string    `json:"status"`
	Views     uint      `json:"views"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type studentView struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Year      string       `json:"year"`
	Bio       string       `json:"bio,omitempty"`
	Projects  []projectRef `json:"projects"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type contactPublicView struct {
	ID                uint      `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Message           string    `json:"message"`
	InterestedProgram string    `json:"interestedProgram"`
	CreatedAt         time.Time `json:"createdAt"`
}

type contactAdminView struct {
	contactPublicView
	Status     string    `json:"status"`
	AdminNotes string    `json:"adminNotes,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type userView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Roles     []string  `json:"roles"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func isAdmin(claims *auth.Claims) bool {
	return claims != nil && claims.IsAdmin()
}

func newProjectPublicView(p *models.Project) projectPublicView {
	return projectPublicView{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           p.Images,
		MainImage:        p.MainImage,
		Year:             p.Year,
		LiveURL:          p.LiveURL,
		GithubURL:        p.GithubURL,
		Students: lo.Map(p.Students, func(s models.Student, _ int) studentRef {
			return studentRef{ID: s.ID, Name: s.Name, Email: s.Email, Year: s.Year}
		}),
		Technologies: lo.Map(p.Technologies, func(t models.Technology, _ int) technologyView {
			return technologyView{ID: t.ID, Name: t.Name, Category: t.Category, Icon: t.Icon}
		}),
		CreatedAt: p.CreatedAt,
	}
}

// projectViewFor hides views and status from anyone without the admin role.
func projectViewFor(claims *auth.Claims, p *models.Project) any {
	public := newProjectPublicView(p)
	if !isAdmin(claims) {
		return public
	}
	return projectAdminView{
		projectPublicView: public,
		Status:            p.Status,
		Views:             p.Views,
		UpdatedAt:         p.UpdatedAt,
	}
}

func newStudentView(s *models.Student) studentView {
	return studentView{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Year:  s.Year,
		Bio:   s.Bio,
		Projects: lo.Map(s.Projects, func(p models.Project, _ int) projectRef {
			return projectRef{ID: p.ID, Title: p.Title, Year: p.Year}
		}),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func newTechnologyView(t *models.Technology) technologyView {
	return technologyView{ID: t.ID, Name: t.Name, Category: t.Category, Icon: t.Icon}
}

func newContactPublicView(c *models.ContactRequest) contactPublicView {
	return contactPublicView{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		Message:           c.Message,
		InterestedProgram: c.InterestedProgram,
		CreatedAt:         c.CreatedAt,
	}
}

// contactViewFor keeps status and adminNotes admin-only; the submitter only
// gets an echo of the public fields back.
func contactViewFor(claims *auth.Claims, c *models.ContactRequest) any {
	public := newContactPublicView(c)
	if !isAdmin(claims) {
		return public
	}
	return contactAdminView{
		contactPublicView: public,
		Status:            c.Status,
		AdminNotes:        c.AdminNotes,
		UpdatedAt:         c.UpdatedAt,
	}
}

func newUserView(u *models.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Roles:     u.GetRoles(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
