package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reeltune/reeltune/internal/model"
	"github.com/reeltune/reeltune/internal/project"
)

// ScheduleView shows the project's content calendar as a flat, date-ordered
// list with add and remove controls.
type ScheduleView struct {
	window       fyne.Window
	localization *Localization

	schedule *project.Schedule
	posts    []*project.ScheduledPost

	list      *widget.List
	container *fyne.Container

	// onChanged is invoked after any schedule mutation so the root can mark
	// the project modified.
	onChanged func()
}

// NewScheduleView creates the schedule view
func NewScheduleView(window fyne.Window, localization *Localization) *ScheduleView {
	sv := &ScheduleView{
		window:       window,
		localization: localization,
	}
	sv.createUI()
	return sv
}

// SetOnChanged sets the callback invoked after schedule mutations
func (sv *ScheduleView) SetOnChanged(fn func()) {
	sv.onChanged = fn
}

// SetSchedule binds the view to a project's schedule and refreshes
func (sv *ScheduleView) SetSchedule(schedule *project.Schedule) {
	sv.schedule = schedule
	sv.Refresh()
}

// Container returns the view's root container
func (sv *ScheduleView) Container() *fyne.Container {
	return sv.container
}

// Refresh reloads the post list from the schedule
func (sv *ScheduleView) Refresh() {
	if sv.schedule != nil {
		sv.posts = sv.schedule.All()
	} else {
		sv.posts = nil
	}
	sv.list.Refresh()
}

func (sv *ScheduleView) createUI() {
	sv.list = widget.NewList(
		func() int {
			return len(sv.posts)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			remove := widget.NewButton(IconClose, nil)
			return container.NewBorder(nil, nil, nil, remove, label)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(sv.posts) {
				return
			}
			post := sv.posts[id]
			row := item.(*fyne.Container)
			label := row.Objects[0].(*widget.Label)
			remove := row.Objects[1].(*widget.Button)

			label.SetText(formatPostRow(post))
			remove.OnTapped = func() {
				sv.removePost(post.ID)
			}
		},
	)
	sv.list.OnSelected = func(id widget.ListItemID) {
		sv.list.Unselect(id)
		if id >= 0 && id < len(sv.posts) {
			sv.showStatusDialog(sv.posts[id])
		}
	}

	header := widget.NewLabelWithStyle(sv.localization.GetText(KeySchedule),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	addButton := widget.NewButton(sv.localization.GetText(KeyAddPost), sv.showAddDialog)

	sv.container = container.NewBorder(
		container.NewBorder(nil, nil, header, addButton),
		nil, nil, nil,
		sv.list,
	)
}

// formatPostRow renders one post as "date · type · title · status"
func formatPostRow(post *project.ScheduledPost) string {
	title := post.Title
	if title == "" {
		title = DashPlaceholder
	}
	return fmt.Sprintf("%s%s%s%s%s%s%s",
		post.Date.Format(ScheduleDateFormat), MiddleDotSeparator,
		post.ContentType, MiddleDotSeparator,
		title, MiddleDotSeparator,
		post.Status)
}

func (sv *ScheduleView) removePost(id string) {
	if sv.schedule == nil {
		return
	}
	if sv.schedule.Remove(id) {
		log.Printf("Removed scheduled post %s", id)
		sv.Refresh()
		sv.notifyChanged()
	}
}

// showAddDialog collects a new post's date, title, content type and status
func (sv *ScheduleView) showAddDialog() {
	if sv.schedule == nil {
		return
	}

	dateEntry := widget.NewEntry()
	dateEntry.SetText(time.Now().Format(ScheduleDateFormat))

	titleEntry := widget.NewEntry()

	typeNames := make([]string, 0, len(model.AllContentTypes()))
	for _, ct := range model.AllContentTypes() {
		typeNames = append(typeNames, ct.String())
	}
	typeSelect := widget.NewSelect(typeNames, nil)
	typeSelect.SetSelected(model.ContentReel.String())

	items := []*widget.FormItem{
		widget.NewFormItem(sv.localization.GetText(KeyPostDate), dateEntry),
		widget.NewFormItem(sv.localization.GetText(KeyPostTitle), titleEntry),
		widget.NewFormItem(sv.localization.GetText(KeyContentType), typeSelect),
	}

	d := dialog.NewForm(sv.localization.GetText(KeyAddPost),
		sv.localization.GetText(KeySave), sv.localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			date, err := time.Parse(ScheduleDateFormat, dateEntry.Text)
			if err != nil {
				log.Printf("Invalid post date %q: %v", dateEntry.Text, err)
				dialog.ShowError(err, sv.window)
				return
			}
			post := sv.schedule.Add(&project.ScheduledPost{
				Date:        date,
				ContentType: model.ParseContentType(typeSelect.Selected),
				Title:       titleEntry.Text,
			})
			log.Printf("Scheduled post %s for %s", post.ID, dateEntry.Text)
			sv.Refresh()
			sv.notifyChanged()
		},
		sv.window)
	d.Resize(fyne.NewSize(ScheduleDialogWidth, ScheduleDialogHeight))
	d.Show()
}

// showStatusDialog cycles a post through its lifecycle statuses
func (sv *ScheduleView) showStatusDialog(post *project.ScheduledPost) {
	statuses := []string{
		string(project.StatusPlanned),
		string(project.StatusReady),
		string(project.StatusPosted),
	}
	statusSelect := widget.NewSelect(statuses, nil)
	statusSelect.SetSelected(string(post.Status))

	items := []*widget.FormItem{
		widget.NewFormItem(sv.localization.GetText(KeyPostStatus), statusSelect),
	}

	d := dialog.NewForm(post.Title,
		sv.localization.GetText(KeySave), sv.localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			sv.schedule.SetStatus(post.ID, project.PostStatus(statusSelect.Selected))
			sv.Refresh()
			sv.notifyChanged()
		},
		sv.window)
	d.Show()
}

func (sv *ScheduleView) notifyChanged() {
	if sv.onChanged != nil {
		sv.onChanged()
	}
}
