package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconSave     = "💾"
	IconPlugin   = "🎛"
	IconCalendar = "📅"
	IconExport   = "🤖"
	IconReset    = "↺"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	OffMarkerText      = "OFF"
)

// Canvas sizing and drawing
const (
	CanvasMinWidth  float32 = 360
	CanvasMinHeight float32 = 480

	SelectionHandleSize  float32 = 7
	SelectionStrokeWidth float32 = 1.5
	FrameStrokeWidth     float32 = 1
	CornerGuideLength    float32 = 14
	DisabledElementAlpha uint8   = 90
	OffMarkerTextSize    float32 = 11
	ElementStrokeWidth   float32 = 1
)

// Properties panel sizing
const (
	PanelMinWidth    float32 = 260
	ColorEntryWidth  float32 = 90
	NumberEntryWidth float32 = 60
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 380
	ScheduleDialogWidth  float32 = 420
	ScheduleDialogHeight float32 = 360
)

// Schedule display
const (
	ScheduleDateFormat = "2006-01-02"
)
