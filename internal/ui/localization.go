package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyOpenDataset      = "open_dataset"
	KeyAutoClassify     = "auto_classify"
	KeyAddClass         = "add_class"
	KeyEnterClassName   = "enter_class_name"
	KeyClassName        = "class_name"
	KeyNext             = "next"
	KeyPrevious         = "previous"
	KeyReveal           = "reveal"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyAdd              = "add"
	KeyNoDataset        = "no_dataset"
	KeyNoImages         = "no_images"
	KeyMissingFile      = "missing_file"
	KeyNoClassifier     = "no_classifier"
	KeyClassified       = "classified"
	KeyLabeledProgress  = "labeled_progress"
	KeyDisplayWidth     = "display_width"
	KeyImageExtensions  = "image_extensions"
	KeyWatchFolder      = "watch_folder"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpening     = "error_opening"
	KeyErrorSaving      = "error_saving"
	KeyErrorRevealing   = "error_revealing"
	KeyDatasetRefreshed = "dataset_refreshed"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Image Labeler",
		KeyOpenDataset:      "Open image dataset",
		KeyAutoClassify:     "Auto classify",
		KeyAddClass:         "Add Class",
		KeyEnterClassName:   "Enter class name",
		KeyClassName:        "Class",
		KeyNext:             "Next",
		KeyPrevious:         "Previous",
		KeyReveal:           "Show in folder",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyAdd:              "Add",
		KeyNoDataset:        "Open a dataset folder to start labeling",
		KeyNoImages:         "No images found in this folder",
		KeyMissingFile:      "Image file not found",
		KeyNoClassifier:     "No classifier is configured",
		KeyClassified:       "Labels suggested by classifier",
		KeyLabeledProgress:  "%d of %d labeled",
		KeyDisplayWidth:     "Display width (px)",
		KeyImageExtensions:  "Image extensions",
		KeyWatchFolder:      "Rescan folder when files change",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpening:     "Error opening dataset",
		KeyErrorSaving:      "Error saving labels",
		KeyErrorRevealing:   "Error revealing file",
		KeyDatasetRefreshed: "Image list updated",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Разметка изображений",
		KeyOpenDataset:      "Открыть набор изображений",
		KeyAutoClassify:     "Автоклассификация",
		KeyAddClass:         "Добавить класс",
		KeyEnterClassName:   "Введите название класса",
		KeyClassName:        "Класс",
		KeyNext:             "Далее",
		KeyPrevious:         "Назад",
		KeyReveal:           "Показать в папке",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyAdd:              "Добавить",
		KeyNoDataset:        "Откройте папку с изображениями, чтобы начать разметку",
		KeyNoImages:         "В папке нет изображений",
		KeyMissingFile:      "Файл изображения не найден",
		KeyNoClassifier:     "Классификатор не настроен",
		KeyClassified:       "Метки предложены классификатором",
		KeyLabeledProgress:  "Размечено %d из %d",
		KeyDisplayWidth:     "Ширина показа (пикс.)",
		KeyImageExtensions:  "Расширения изображений",
		KeyWatchFolder:      "Обновлять список при изменении папки",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpening:     "Ошибка открытия набора",
		KeyErrorSaving:      "Ошибка сохранения меток",
		KeyErrorRevealing:   "Ошибка открытия файла",
		KeyDatasetRefreshed: "Список изображений обновлён",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Rotulador de Imagens",
		KeyOpenDataset:      "Abrir conjunto de imagens",
		KeyAutoClassify:     "Classificar automaticamente",
		KeyAddClass:         "Adicionar classe",
		KeyEnterClassName:   "Digite o nome da classe",
		KeyClassName:        "Classe",
		KeyNext:             "Próxima",
		KeyPrevious:         "Anterior",
		KeyReveal:           "Mostrar na pasta",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyAdd:              "Adicionar",
		KeyNoDataset:        "Abra uma pasta de imagens para começar",
		KeyNoImages:         "Nenhuma imagem encontrada nesta pasta",
		KeyMissingFile:      "Arquivo de imagem não encontrado",
		KeyNoClassifier:     "Nenhum classificador configurado",
		KeyClassified:       "Rótulos sugeridos pelo classificador",
		KeyLabeledProgress:  "%d de %d rotuladas",
		KeyDisplayWidth:     "Largura de exibição (px)",
		KeyImageExtensions:  "Extensões de imagem",
		KeyWatchFolder:      "Atualizar quando a pasta mudar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyErrorOpening:     "Erro ao abrir conjunto",
		KeyErrorSaving:      "Erro ao salvar rótulos",
		KeyErrorRevealing:   "Erro ao mostrar arquivo",
		KeyDatasetRefreshed: "Lista de imagens atualizada",
	}
}
