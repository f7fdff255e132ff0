package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveAtKeepsOrder(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"a", "c", "d"}, RemoveAt(list, 1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, list)
	assert.Equal(t, list, RemoveAt(list, 9))
	assert.Equal(t, []string{"a", "x", "c", "d"}, SetAt(list, 1, "x"))
	assert.Equal(t, list, SetAt(list, -1, "x"))
}

func TestCourseCurriculumEditing(t *testing.T) {
	f := NewProductForm()
	f.AddObjective("Breathe")
	f.AddObjective("Reflect")
	f.AddObjective("Rest")
	f.RemoveObjective(0)
	f.SetObjective(1, "Sleep")
	assert.Equal(t, []string{"Reflect", "Sleep"}, f.Course.LearningObjectives)

	f.AddRequirement("Notebook")
	f.SetRequirement(0, "Journal")
	assert.Equal(t, []string{"Journal"}, f.Course.Requirements)

	f.AddSection(CurriculumSection{Name: "Intro"})
	f.AddSection(CurriculumSection{Name: "Practice"})
	f.AddLecture(1, "Body scan")
	f.AddLecture(1, "Noting")
	f.AddLecture(1, "Walking")
	f.RemoveLecture(1, 1)
	f.SetLecture(1, 0, "Long body scan")
	f.AddLecture(7, "ignored")

	require.Len(t, f.Course.Curriculum, 2)
	assert.Empty(t, f.Course.Curriculum[0].Items)
	assert.Equal(t, []string{"Long body scan", "Walking"}, f.Course.Curriculum[1].Items)

	f.RemoveSection(0)
	assert.Equal(t, "Practice", f.Course.Curriculum[0].Name)
}

func TestLectureEditsLeaveEarlierCopiesAlone(t *testing.T) {
	f := NewProductForm()
	f.AddSection(CurriculumSection{Name: "Intro", Items: make([]string, 1, 4)})

	before := f
	f.AddLecture(0, "Breathing")
	before.AddLecture(0, "Noting")
	f.SetLecture(0, 0, "Hello")

	assert.Equal(t, []string{"Hello", "Breathing"}, f.Course.Curriculum[0].Items)
	assert.Equal(t, []string{"", "Noting"}, before.Course.Curriculum[0].Items)

	objectives := make([]string, 1, 4)
	objectives[0] = "Breathe"
	a := Append(objectives, "Rest")
	b := Append(objectives, "Sleep")
	assert.Equal(t, []string{"Breathe", "Rest"}, a)
	assert.Equal(t, []string{"Breathe", "Sleep"}, b)
}

func TestApplyEdit(t *testing.T) {
	f := NewProductForm()
	edits := []FormEdit{
		{List: ListObjectives, Op: "add", Value: "Breathe"},
		{List: ListObjectives, Op: "add", Value: "Rest"},
		{List: ListObjectives, Op: "set", Index: 1, Value: "Sleep"},
		{List: ListRequirements, Op: "add", Value: "Notebook"},
		{List: ListRequirements, Op: "remove", Index: 0},
		{List: ListSections, Op: "add", Block: CurriculumSection{Name: "Intro"}},
		{List: ListSections, Op: "set", Index: 0, Block: CurriculumSection{Name: "Welcome"}},
		{List: ListLectures, Op: "add", Section: 0, Value: "Body scan"},
		{List: ListLectures, Op: "add", Section: 0, Value: "Noting"},
		{List: ListLectures, Op: "remove", Section: 0, Index: 0},
	}
	for _, e := range edits {
		require.NoError(t, f.ApplyEdit(e))
	}

	assert.Equal(t, []string{"Breathe", "Sleep"}, f.Course.LearningObjectives)
	assert.Empty(t, f.Course.Requirements)
	require.Len(t, f.Course.Curriculum, 1)
	assert.Equal(t, "Welcome", f.Course.Curriculum[0].Name)
	assert.Equal(t, []string{"Noting"}, f.Course.Curriculum[0].Items)

	var verr *ValidationError
	require.ErrorAs(t, f.ApplyEdit(FormEdit{List: "chapters", Op: "add"}), &verr)
	assert.Equal(t, "list", verr.Field)
}

func TestCourseRequiredFields(t *testing.T) {
	f := NewProductForm()
	f.Title = "Calm"
	f.Description = "Eight weeks"
	f.Price = 99
	f.Course.VideoURL = "https://video.example.test/calm"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(), &verr)
	assert.Equal(t, "thumbnail", verr.Field)

	f.Course.ThumbnailFile = &Attachment{Field: "thumbnail", FileName: "calm.png", Content: strings.NewReader("png")}
	require.NoError(t, f.Validate())
	assert.Len(t, f.Files(), 1)
}

func TestOtherProductTypesAreLooser(t *testing.T) {
	f := NewProductForm()
	f.SetType(ProductGadget)
	f.Name = "Light box"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(), &verr)
	assert.Equal(t, "description", verr.Field)

	f.Description = "Morning light therapy"
	require.NoError(t, f.Validate())

	f.SetType(ProductType("Vinyl"))
	assert.Error(t, f.Validate())
}

func TestProductPayloadDropsInactiveGroups(t *testing.T) {
	f := NewProductForm()
	f.SetType(ProductEBook)
	f.Name = "Worry less"
	f.Description = "A short guide"
	f.EBook.Author = "R. Das"
	f.Course.VideoURL = "https://video.example.test/stale"

	p := f.Payload()
	assert.Equal(t, "R. Das", p.Author)
	assert.Empty(t, p.VideoURL)
	assert.Equal(t, ProductActive, p.Status)
}
