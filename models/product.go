package models

type ProductType string

const (
	ProductCourse ProductType = "Course"
	ProductEBook  ProductType = "E-book"
	ProductApp    ProductType = "App"
	ProductGadget ProductType = "Gadget"
)

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// CurriculumSection is one section of a course with its ordered lectures.
type CurriculumSection struct {
	Name     string   `json:"name"`
	Lectures int      `json:"lectures"`
	Duration string   `json:"duration"`
	Items    []string `json:"items"`
}

// Product is the stored record; only the group matching Type is populated.
type Product struct {
	ID            int64       `json:"id,omitempty"`
	Type          ProductType `json:"type"`
	Status        string      `json:"status"`
	Featured      bool        `json:"featured"`
	Title         string      `json:"title,omitempty"`
	Name          string      `json:"name,omitempty"`
	Description   string      `json:"description"`
	Price         float64     `json:"price,omitempty"`
	DiscountPrice float64     `json:"discount_price,omitempty"`
	Category      string      `json:"category,omitempty"`

	VideoURL           string              `json:"video_url,omitempty"`
	Thumbnail          string              `json:"thumbnail,omitempty"`
	Level              string              `json:"level,omitempty"`
	Language           string              `json:"language,omitempty"`
	CourseDuration     string              `json:"course_duration,omitempty"`
	InstructorName     string              `json:"instructor_name,omitempty"`
	InstructorBio      string              `json:"instructor_bio,omitempty"`
	InstructorImage    string              `json:"instructor_image,omitempty"`
	LearningObjectives []string            `json:"learning_objectives,omitempty"`
	Requirements       []string            `json:"requirements,omitempty"`
	Curriculum         []CurriculumSection `json:"curriculum,omitempty"`

	Author string `json:"author,omitempty"`
	Pages  int    `json:"pages,omitempty"`
	Format string `json:"format,omitempty"`
	PDF    string `json:"pdf,omitempty"`

	Icon         string `json:"icon,omitempty"`
	Platform     string `json:"platform,omitempty"`
	PlayStoreURL string `json:"play_store_url,omitempty"`
	AppStoreURL  string `json:"app_store_url,omitempty"`
	WebURL       string `json:"web_url,omitempty"`

	Brand          string `json:"brand,omitempty"`
	Stock          int    `json:"stock,omitempty"`
	ProductImage   string `json:"product_image,omitempty"`
	Specifications string `json:"specifications,omitempty"`
}

type CourseDetails struct {
	VideoURL           string              `json:"video_url"`
	Thumbnail          string              `json:"thumbnail"`
	Level              string              `json:"level"`
	Language           string              `json:"language"`
	Duration           string              `json:"course_duration"`
	InstructorName     string              `json:"instructor_name"`
	InstructorBio      string              `json:"instructor_bio"`
	InstructorImage    string              `json:"instructor_image"`
	LearningObjectives []string            `json:"learning_objectives"`
	Requirements       []string            `json:"requirements"`
	Curriculum         []CurriculumSection `json:"curriculum"`

	ThumbnailFile       *Attachment `json:"-"`
	InstructorImageFile *Attachment `json:"-"`
}

type EBookDetails struct {
	Author  string      `json:"author"`
	Pages   int         `json:"pages"`
	Format  string      `json:"format"`
	PDF     string      `json:"pdf"`
	PDFFile *Attachment `json:"-"`
}

type AppDetails struct {
	Icon         string      `json:"icon"`
	Platform     string      `json:"platform"`
	PlayStoreURL string      `json:"play_store_url"`
	AppStoreURL  string      `json:"app_store_url"`
	WebURL       string      `json:"web_url"`
	IconFile     *Attachment `json:"-"`
}

type GadgetDetails struct {
	Brand            string      `json:"brand"`
	Stock            int         `json:"stock"`
	ProductImage     string      `json:"product_image"`
	Specifications   string      `json:"specifications"`
	ProductImageFile *Attachment `json:"-"`
}

// ProductForm is the authoring state of a product, one group per type.
type ProductForm struct {
	ID            int64       `json:"id,omitempty"`
	Type          ProductType `json:"type"`
	Status        string      `json:"status"`
	Featured      bool        `json:"featured"`
	Title         string      `json:"title"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	DiscountPrice float64     `json:"discount_price"`
	Category      string      `json:"category"`

	Course CourseDetails `json:"course"`
	EBook  EBookDetails  `json:"ebook"`
	App    AppDetails    `json:"app"`
	Gadget GadgetDetails `json:"gadget"`
}

func NewProductForm() ProductForm {
	return ProductForm{Type: ProductCourse, Status: ProductActive}
}

// ProductFormFromRecord seeds an edit form. Upload fields start empty; the stored
// URLs stay on the form so an unchanged file is kept.
func ProductFormFromRecord(p Product) ProductForm {
	f := ProductForm{
		ID:            p.ID,
		Type:          p.Type,
		Status:        p.Status,
		Featured:      p.Featured,
		Title:         p.Title,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Category:      p.Category,
	}
	switch p.Type {
	case ProductCourse:
		f.Course = CourseDetails{
			VideoURL:           p.VideoURL,
			Thumbnail:          p.Thumbnail,
			Level:              p.Level,
			Language:           p.Language,
			Duration:           p.CourseDuration,
			InstructorName:     p.InstructorName,
			InstructorBio:      p.InstructorBio,
			InstructorImage:    p.InstructorImage,
			LearningObjectives: p.LearningObjectives,
			Requirements:       p.Requirements,
			Curriculum:         p.Curriculum,
		}
	case ProductEBook:
		f.EBook = EBookDetails{Author: p.Author, Pages: p.Pages, Format: p.Format, PDF: p.PDF}
	case ProductApp:
		f.App = AppDetails{Icon: p.Icon, Platform: p.Platform, PlayStoreURL: p.PlayStoreURL, AppStoreURL: p.AppStoreURL, WebURL: p.WebURL}
	case ProductGadget:
		f.Gadget = GadgetDetails{Brand: p.Brand, Stock: p.Stock, ProductImage: p.ProductImage, Specifications: p.Specifications}
	}
	return f
}

func (f *ProductForm) SetType(t ProductType) {
	f.Type = t
}

func (f *ProductForm) AddObjective(s string) {
	f.Course.LearningObjectives = Append(f.Course.LearningObjectives, s)
}

func (f *ProductForm) RemoveObjective(i int) {
	f.Course.LearningObjectives = RemoveAt(f.Course.LearningObjectives, i)
}

func (f *ProductForm) SetObjective(i int, s string) {
	f.Course.LearningObjectives = SetAt(f.Course.LearningObjectives, i, s)
}

func (f *ProductForm) AddRequirement(s string) {
	f.Course.Requirements = Append(f.Course.Requirements, s)
}

func (f *ProductForm) RemoveRequirement(i int) {
	f.Course.Requirements = RemoveAt(f.Course.Requirements, i)
}

func (f *ProductForm) SetRequirement(i int, s string) {
	f.Course.Requirements = SetAt(f.Course.Requirements, i, s)
}

func (f *ProductForm) AddSection(s CurriculumSection) {
	f.Course.Curriculum = Append(f.Course.Curriculum, s)
}

func (f *ProductForm) RemoveSection(i int) {
	f.Course.Curriculum = RemoveAt(f.Course.Curriculum, i)
}

func (f *ProductForm) SetSection(i int, s CurriculumSection) {
	f.Course.Curriculum = SetAt(f.Course.Curriculum, i, s)
}

// AddLecture appends a lecture item to the section at index section.
func (f *ProductForm) AddLecture(section int, item string) {
	f.editSection(section, func(s *CurriculumSection) { s.Items = Append(s.Items, item) })
}

func (f *ProductForm) RemoveLecture(section, i int) {
	f.editSection(section, func(s *CurriculumSection) { s.Items = RemoveAt(s.Items, i) })
}

func (f *ProductForm) SetLecture(section, i int, item string) {
	f.editSection(section, func(s *CurriculumSection) { s.Items = SetAt(s.Items, i, item) })
}

func (f *ProductForm) editSection(i int, edit func(*CurriculumSection)) {
	if i < 0 || i >= len(f.Course.Curriculum) {
		return
	}
	section := f.Course.Curriculum[i]
	section.Items = append([]string(nil), section.Items...)
	edit(&section)
	f.Course.Curriculum = SetAt(f.Course.Curriculum, i, section)
}

// Course list names accepted by FormEdit.
const (
	ListObjectives   = "objectives"
	ListRequirements = "requirements"
	ListSections     = "sections"
	ListLectures     = "lectures"
)

// FormEdit is one add, remove or set on a course list of a product form.
// Section picks the curriculum section for lecture edits. Block is the
// section value for section adds and sets; Value is used everywhere else.
type FormEdit struct {
	List    string            `json:"list" binding:"required,oneof=objectives requirements sections lectures"`
	Op      string            `json:"op" binding:"required,oneof=add remove set"`
	Index   int               `json:"index"`
	Section int               `json:"section"`
	Value   string            `json:"value"`
	Block   CurriculumSection `json:"block"`
}

// ApplyEdit runs e against the form.
func (f *ProductForm) ApplyEdit(e FormEdit) error {
	switch e.List + ":" + e.Op {
	case ListObjectives + ":add":
		f.AddObjective(e.Value)
	case ListObjectives + ":remove":
		f.RemoveObjective(e.Index)
	case ListObjectives + ":set":
		f.SetObjective(e.Index, e.Value)
	case ListRequirements + ":add":
		f.AddRequirement(e.Value)
	case ListRequirements + ":remove":
		f.RemoveRequirement(e.Index)
	case ListRequirements + ":set":
		f.SetRequirement(e.Index, e.Value)
	case ListSections + ":add":
		f.AddSection(e.Block)
	case ListSections + ":remove":
		f.RemoveSection(e.Index)
	case ListSections + ":set":
		f.SetSection(e.Index, e.Block)
	case ListLectures + ":add":
		f.AddLecture(e.Section, e.Value)
	case ListLectures + ":remove":
		f.RemoveLecture(e.Section, e.Index)
	case ListLectures + ":set":
		f.SetLecture(e.Section, e.Index, e.Value)
	default:
		return invalid("list", "unknown list edit "+e.List+" "+e.Op)
	}
	return nil
}

// Validate applies the type-dependent required fields.
func (f ProductForm) Validate() error {
	if f.Status != "" && f.Status != ProductActive && f.Status != ProductInactive {
		return invalid("status", "status must be active or inactive")
	}

	switch f.Type {
	case ProductCourse:
		switch {
		case f.Title == "":
			return required("title")
		case f.Description == "":
			return required("description")
		case f.Price <= 0:
			return invalid("price", "price must be greater than zero")
		case f.Course.VideoURL == "":
			return required("video_url")
		case !f.Course.ThumbnailFile.Present() && f.Course.Thumbnail == "":
			return invalid("thumbnail", "a thumbnail image is required")
		}
	case ProductEBook, ProductApp, ProductGadget:
		if f.Name == "" {
			return required("name")
		}
		if f.Description == "" {
			return required("description")
		}
	default:
		return invalid("type", "type must be Course, E-book, App or Gadget")
	}
	return nil
}

// Payload flattens the common fields and the active group.
func (f ProductForm) Payload() Product {
	p := Product{
		ID:            f.ID,
		Type:          f.Type,
		Status:        f.Status,
		Featured:      f.Featured,
		Title:         f.Title,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		DiscountPrice: f.DiscountPrice,
		Category:      f.Category,
	}
	if p.Status == "" {
		p.Status = ProductActive
	}

	switch f.Type {
	case ProductCourse:
		c := f.Course
		p.VideoURL = c.VideoURL
		p.Thumbnail = c.Thumbnail
		p.Level = c.Level
		p.Language = c.Language
		p.CourseDuration = c.Duration
		p.InstructorName = c.InstructorName
		p.InstructorBio = c.InstructorBio
		p.InstructorImage = c.InstructorImage
		p.LearningObjectives = c.LearningObjectives
		p.Requirements = c.Requirements
		p.Curriculum = c.Curriculum
	case ProductEBook:
		p.Author = f.EBook.Author
		p.Pages = f.EBook.Pages
		p.Format = f.EBook.Format
		p.PDF = f.EBook.PDF
	case ProductApp:
		p.Icon = f.App.Icon
		p.Platform = f.App.Platform
		p.PlayStoreURL = f.App.PlayStoreURL
		p.AppStoreURL = f.App.AppStoreURL
		p.WebURL = f.App.WebURL
	case ProductGadget:
		p.Brand = f.Gadget.Brand
		p.Stock = f.Gadget.Stock
		p.ProductImage = f.Gadget.ProductImage
		p.Specifications = f.Gadget.Specifications
	}
	return p
}

// Files returns the uploads of the active group.
func (f ProductForm) Files() []Attachment {
	switch f.Type {
	case ProductCourse:
		return Attachments(f.Course.ThumbnailFile, f.Course.InstructorImageFile)
	case ProductEBook:
		return Attachments(f.EBook.PDFFile)
	case ProductApp:
		return Attachments(f.App.IconFile)
	case ProductGadget:
		return Attachments(f.Gadget.ProductImageFile)
	}
	return nil
}
