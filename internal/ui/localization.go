package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyHelp               = "help"
	KeyOpenNotes          = "open_notes"
	KeyExport             = "export"
	KeyStop               = "stop"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyCheckForUpdates    = "check_for_updates"
	KeyCheckingForUpdates = "checking_for_updates"
	KeyUpdateAvailable    = "update_available"
	KeyCurrentVersion     = "current_version"
	KeyNewVersion         = "new_version"
	KeyUpdateNow          = "update_now"
	KeyLater              = "later"
	KeySkipVersion        = "skip_version"
	KeyNoUpdateTitle      = "no_update_title"
	KeyNoUpdateMessage    = "no_update_message"
	KeyUpdateCheckFailed  = "update_check_failed"
	KeyNotesFontSize      = "notes_font_size"
	KeyWheelLines         = "wheel_lines"
	KeyLineStep           = "line_step"
	KeyCheckOnStartup     = "check_on_startup"
	KeyUpdateChannel      = "update_channel"
	KeyExportDirectory    = "export_directory"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyExportStarted      = "export_started"
	KeyExportCompleted    = "export_completed"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyErrorOpeningLink   = "error_opening_link"
	KeyErrorStoppingTask  = "error_stopping_task"
	KeyPathCopied         = "path_copied"
	KeyNoNotes            = "no_notes"
	KeyWelcomeNotes       = "welcome_notes"
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
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage derives a two-letter language code from the locale environment
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
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
		"zh": "中文",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Catime Release Notes",
		KeyFile:               "File",
		KeyHelp:               "Help",
		KeyOpenNotes:          "Open Notes…",
		KeyExport:             "Export PNG",
		KeyStop:               "Stop",
		KeyOpen:               "Open",
		KeyReveal:             "Reveal",
		KeyCopyPath:           "Path",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyCheckForUpdates:    "Check for Updates",
		KeyCheckingForUpdates: "Checking for updates…",
		KeyUpdateAvailable:    "Update Available",
		KeyCurrentVersion:     "Current version:",
		KeyNewVersion:         "New version:",
		KeyUpdateNow:          "Update Now",
		KeyLater:              "Later",
		KeySkipVersion:        "Skip this version",
		KeyNoUpdateTitle:      "No Updates",
		KeyNoUpdateMessage:    "You are already using the latest version.",
		KeyUpdateCheckFailed:  "Update check failed",
		KeyNotesFontSize:      "Notes Font Size",
		KeyWheelLines:         "Lines per Wheel Notch",
		KeyLineStep:           "Line Step (px)",
		KeyCheckOnStartup:     "Check for updates on startup",
		KeyUpdateChannel:      "Update Channel",
		KeyExportDirectory:    "Export Directory",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyExportStarted:      "Export started",
		KeyExportCompleted:    "Export completed",
		KeyErrorOpeningFile:   "Error opening file",
		KeyErrorOpeningLink:   "Error opening link",
		KeyErrorStoppingTask:  "Error stopping task",
		KeyPathCopied:         "Path copied to clipboard",
		KeyNoNotes:            "No notes loaded",
		KeyWelcomeNotes:       "# Release Notes\nOpen a markdown file or use **Check for Updates** to load the latest release notes.",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:           "Catime 更新日志",
		KeyFile:               "文件",
		KeyHelp:               "帮助",
		KeyOpenNotes:          "打开日志…",
		KeyExport:             "导出 PNG",
		KeyStop:               "停止",
		KeyOpen:               "打开",
		KeyReveal:             "显示",
		KeyCopyPath:           "路径",
		KeySettings:           "设置",
		KeyLanguage:           "语言",
		KeyCheckForUpdates:    "检查更新",
		KeyCheckingForUpdates: "正在检查更新…",
		KeyUpdateAvailable:    "发现新版本",
		KeyCurrentVersion:     "当前版本:",
		KeyNewVersion:         "新版本:",
		KeyUpdateNow:          "立即更新",
		KeyLater:              "稍后",
		KeySkipVersion:        "跳过此版本",
		KeyNoUpdateTitle:      "没有更新",
		KeyNoUpdateMessage:    "您已经在使用最新版本。",
		KeyUpdateCheckFailed:  "检查更新失败",
		KeyNotesFontSize:      "日志字号",
		KeyWheelLines:         "每格滚动行数",
		KeyLineStep:           "行高步长 (px)",
		KeyCheckOnStartup:     "启动时检查更新",
		KeyUpdateChannel:      "更新通道",
		KeyExportDirectory:    "导出目录",
		KeySave:               "保存",
		KeyCancel:             "取消",
		KeyBrowse:             "浏览",
		KeySettingsSaved:      "设置已保存!",
		KeyExportStarted:      "开始导出",
		KeyExportCompleted:    "导出完成",
		KeyErrorOpeningFile:   "打开文件出错",
		KeyErrorOpeningLink:   "打开链接出错",
		KeyErrorStoppingTask:  "停止任务出错",
		KeyPathCopied:         "路径已复制",
		KeyNoNotes:            "未加载日志",
		KeyWelcomeNotes:       "# 更新日志\n打开一个 markdown 文件, 或使用 **检查更新** 加载最新的更新日志。",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Catime: список изменений",
		KeyFile:               "Файл",
		KeyHelp:               "Справка",
		KeyOpenNotes:          "Открыть заметки…",
		KeyExport:             "Экспорт PNG",
		KeyStop:               "Стоп",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать",
		KeyCopyPath:           "Путь",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyCheckForUpdates:    "Проверить обновления",
		KeyCheckingForUpdates: "Проверка обновлений…",
		KeyUpdateAvailable:    "Доступно обновление",
		KeyCurrentVersion:     "Текущая версия:",
		KeyNewVersion:         "Новая версия:",
		KeyUpdateNow:          "Обновить",
		KeyLater:              "Позже",
		KeySkipVersion:        "Пропустить версию",
		KeyNoUpdateTitle:      "Обновлений нет",
		KeyNoUpdateMessage:    "Вы используете последнюю версию.",
		KeyUpdateCheckFailed:  "Ошибка проверки обновлений",
		KeyNotesFontSize:      "Размер шрифта",
		KeyWheelLines:         "Строк за щелчок колеса",
		KeyLineStep:           "Шаг строки (px)",
		KeyCheckOnStartup:     "Проверять обновления при запуске",
		KeyUpdateChannel:      "Канал обновлений",
		KeyExportDirectory:    "Папка экспорта",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyExportStarted:      "Экспорт начат",
		KeyExportCompleted:    "Экспорт завершён",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyErrorOpeningLink:   "Ошибка открытия ссылки",
		KeyErrorStoppingTask:  "Ошибка остановки задачи",
		KeyPathCopied:         "Путь скопирован",
		KeyNoNotes:            "Заметки не загружены",
		KeyWelcomeNotes:       "# Список изменений\nОткройте markdown-файл или нажмите **Проверить обновления**, чтобы загрузить последние изменения.",
	}
}
