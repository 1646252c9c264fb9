package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyNewProject         = "new_project"
	KeyOpenProject        = "open_project"
	KeySaveProject        = "save_project"
	KeyImportPlugin       = "import_plugin"
	KeyImportSession      = "import_session"
	KeyAddAsset           = "add_asset"
	KeyExportAI           = "export_ai"
	KeyResetLayout        = "reset_layout"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyContentType        = "content_type"
	KeySchedule           = "schedule"
	KeyCanvas             = "canvas"
	KeyProperties         = "properties"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyProjectsDirectory  = "projects_directory"
	KeyAutosaveMinutes    = "autosave_minutes"
	KeyDefaultContentType = "default_content_type"
	KeyProjectSaved       = "project_saved"
	KeyProjectLoaded      = "project_loaded"
	KeyPluginImported     = "plugin_imported"
	KeyExportDone         = "export_done"
	KeyErrorSaving        = "error_saving"
	KeyErrorLoading       = "error_loading"
	KeyErrorImporting     = "error_importing"
	KeyResetConfirmTitle  = "reset_confirm_title"
	KeyResetConfirmText   = "reset_confirm_text"
	KeySettingsSaved      = "settings_saved"
	KeyNoPluginYet        = "no_plugin_yet"
	KeyAddPost            = "add_post"
	KeyRemovePost         = "remove_post"
	KeyPostTitle          = "post_title"
	KeyPostDate           = "post_date"
	KeyPostStatus         = "post_status"
	KeyNoSelection        = "no_selection"
	KeyVisible            = "visible"
	KeyEnabled            = "enabled"
	KeyConstrained        = "constrained"
	KeyUsePluginRatio     = "use_plugin_ratio"
	KeyLoadPluginRatio    = "load_plugin_ratio"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "ReelTune",
		KeyNewProject:         "New Project",
		KeyOpenProject:        "Open Project",
		KeySaveProject:        "Save Project",
		KeyImportPlugin:       "Import Plugin",
		KeyImportSession:      "Import XplainPack",
		KeyAddAsset:           "Add Asset",
		KeyExportAI:           "Export for AI",
		KeyResetLayout:        "Reset Layout",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyContentType:        "Content Type",
		KeySchedule:           "Schedule",
		KeyCanvas:             "Canvas",
		KeyProperties:         "Properties",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyProjectsDirectory:  "Projects Directory",
		KeyAutosaveMinutes:    "Autosave Interval (minutes, 0 = off)",
		KeyDefaultContentType: "Default Content Type",
		KeyProjectSaved:       "Project saved",
		KeyProjectLoaded:      "Project loaded",
		KeyPluginImported:     "Plugin imported",
		KeyExportDone:         "Export written",
		KeyErrorSaving:        "Error saving project",
		KeyErrorLoading:       "Error loading project",
		KeyErrorImporting:     "Error importing plugin",
		KeyResetConfirmTitle:  "Reset layout",
		KeyResetConfirmText:   "Restore default element positions for this content type?",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyNoPluginYet:        "No plugin imported yet",
		KeyAddPost:            "Add Post",
		KeyRemovePost:         "Remove",
		KeyPostTitle:          "Title",
		KeyPostDate:           "Date (YYYY-MM-DD)",
		KeyPostStatus:         "Status",
		KeyNoSelection:        "Nothing selected",
		KeyVisible:            "Visible",
		KeyEnabled:            "Enabled",
		KeyConstrained:        "Keep inside frame",
		KeyUsePluginRatio:     "Lock to plugin aspect ratio",
		KeyLoadPluginRatio:    "Load from .adsp",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "ReelTune",
		KeyNewProject:         "Новый проект",
		KeyOpenProject:        "Открыть проект",
		KeySaveProject:        "Сохранить проект",
		KeyImportPlugin:       "Импорт плагина",
		KeyImportSession:      "Импорт XplainPack",
		KeyAddAsset:           "Добавить ассет",
		KeyExportAI:           "Экспорт для ИИ",
		KeyResetLayout:        "Сбросить раскладку",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyContentType:        "Тип контента",
		KeySchedule:           "Календарь",
		KeyCanvas:             "Холст",
		KeyProperties:         "Свойства",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyProjectsDirectory:  "Папка проектов",
		KeyAutosaveMinutes:    "Автосохранение (минуты, 0 = выкл)",
		KeyDefaultContentType: "Тип контента по умолчанию",
		KeyProjectSaved:       "Проект сохранён",
		KeyProjectLoaded:      "Проект загружен",
		KeyPluginImported:     "Плагин импортирован",
		KeyExportDone:         "Экспорт записан",
		KeyErrorSaving:        "Ошибка сохранения проекта",
		KeyErrorLoading:       "Ошибка загрузки проекта",
		KeyErrorImporting:     "Ошибка импорта плагина",
		KeyResetConfirmTitle:  "Сброс раскладки",
		KeyResetConfirmText:   "Восстановить позиции элементов по умолчанию для этого типа контента?",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyNoPluginYet:        "Плагин ещё не импортирован",
		KeyAddPost:            "Добавить пост",
		KeyRemovePost:         "Удалить",
		KeyPostTitle:          "Заголовок",
		KeyPostDate:           "Дата (ГГГГ-ММ-ДД)",
		KeyPostStatus:         "Статус",
		KeyNoSelection:        "Ничего не выбрано",
		KeyVisible:            "Видимый",
		KeyEnabled:            "Включён",
		KeyConstrained:        "Держать в кадре",
		KeyUsePluginRatio:     "Пропорции окна плагина",
		KeyLoadPluginRatio:    "Загрузить из .adsp",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "ReelTune",
		KeyNewProject:         "Novo Projeto",
		KeyOpenProject:        "Abrir Projeto",
		KeySaveProject:        "Salvar Projeto",
		KeyImportPlugin:       "Importar Plugin",
		KeyImportSession:      "Importar XplainPack",
		KeyAddAsset:           "Adicionar Mídia",
		KeyExportAI:           "Exportar para IA",
		KeyResetLayout:        "Redefinir Layout",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyContentType:        "Tipo de Conteúdo",
		KeySchedule:           "Calendário",
		KeyCanvas:             "Tela",
		KeyProperties:         "Propriedades",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyProjectsDirectory:  "Diretório de Projetos",
		KeyAutosaveMinutes:    "Autosalvar (minutos, 0 = desligado)",
		KeyDefaultContentType: "Tipo de Conteúdo Padrão",
		KeyProjectSaved:       "Projeto salvo",
		KeyProjectLoaded:      "Projeto carregado",
		KeyPluginImported:     "Plugin importado",
		KeyExportDone:         "Exportação gravada",
		KeyErrorSaving:        "Erro ao salvar projeto",
		KeyErrorLoading:       "Erro ao carregar projeto",
		KeyErrorImporting:     "Erro ao importar plugin",
		KeyResetConfirmTitle:  "Redefinir layout",
		KeyResetConfirmText:   "Restaurar as posições padrão dos elementos para este tipo de conteúdo?",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyNoPluginYet:        "Nenhum plugin importado ainda",
		KeyAddPost:            "Adicionar Post",
		KeyRemovePost:         "Remover",
		KeyPostTitle:          "Título",
		KeyPostDate:           "Data (AAAA-MM-DD)",
		KeyPostStatus:         "Status",
		KeyNoSelection:        "Nada selecionado",
		KeyVisible:            "Visível",
		KeyEnabled:            "Ativado",
		KeyConstrained:        "Manter no quadro",
		KeyUsePluginRatio:     "Travar na proporção do plugin",
		KeyLoadPluginRatio:    "Carregar de .adsp",
	}
}
