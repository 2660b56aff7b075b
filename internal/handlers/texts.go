package handlers

// User-facing strings. Kept in one place so flows stay consistent.
const (
	msgWelcomeNew  = "Добро пожаловать! Вы зарегистрированы как администратор."
	msgWelcomeBack = "Здравствуйте, %s!"
	msgHelp        = "🤖 Это бот для сбора ежедневных отчетов.\n\n" +
		"/report - Отправить ежедневный отчет\n" +
		"/today - Посмотреть сегодняшние отчеты\n" +
		"/period - Отчеты за период\n" +
		"/objects - Управление объектами\n" +
		"/help - Показать это сообщение"
	msgMainMenu = "Главное меню"

	msgPleaseRegister  = "Пожалуйста, сначала зарегистрируйтесь, используя команду /start"
	msgOwnersOnly      = "Эта операция доступна только владельцу."
	msgAlreadyReported = "Вы уже отправили отчет сегодня. Повторная отправка невозможна."
	msgGenericError    = "Произошла ошибка. Попробуйте позже."
	msgUseReport       = "Чтобы начать отчет, используйте команду /report"
	msgUseButtons      = "Используйте кнопки под сообщением."

	msgNoObjects     = "Сначала добавьте объекты. Используйте команду /objects"
	msgChooseObjects = "Выберите объекты, над которыми работали сегодня:"
	toastEmptyPick   = "Выберите хотя бы один объект"
	toastDraftLost   = "Данные отчета не найдены. Начните заново с /report"
	toastObjectGone  = "Объект уже удален"

	promptCleaners     = "Введите список горничных, которые работали сегодня:"
	promptHelpers      = "Введите список подсобных рабочих, которые работали сегодня:"
	promptPayments     = "Введите информацию о доплатах за проживание (сколько и по каким объектам):"
	promptMalfunctions = "Введите информацию о поломках и неисправностях:"
	msgReadyQuestion   = "Готов ли объект к сдаче по чек-листу?"
	msgReportSaved     = "✅ Отчет успешно отправлен!"

	msgNoReportsToday = "Сегодня еще нет отчетов."
	msgNoReportsRange = "За выбранный период отчетов нет."
	promptRangeStart  = "Введите начальную дату периода в формате ДД.ММ.ГГГГ:"
	promptRangeEnd    = "Введите конечную дату периода в формате ДД.ММ.ГГГГ:"
	msgBadDate        = "Неверный формат даты. Введите дату как 31.12.2024:"
	msgEndBeforeStart = "Конечная дата раньше начальной. Введите конечную дату еще раз:"

	msgObjectsMenu        = "Управление объектами:"
	promptObjectAddress   = "Введите адрес нового объекта:"
	msgObjectAdded        = "Объект \"%s\" успешно добавлен!"
	msgObjectDeleted      = "Объект удален."
	msgNoObjectsYet       = "Нет добавленных объектов."
	msgDeleteChooseObject = "Выберите объект для удаления:"

	msgReminder = "⏰ Напоминание: Не забудьте отправить ежедневный отчет!\n\n" +
		"Используйте команду /report для отправки информации о проделанной работе."
	msgNoReportsFor = "📊 Нет отчетов за %s"
)

// Button labels.
const (
	btnReport    = "📝 Отправить отчет"
	btnToday     = "📊 Отчеты за сегодня"
	btnRange     = "📅 Отчеты за период"
	btnObjects   = "🏠 Управление объектами"
	btnAdd       = "➕ Добавить объект"
	btnList      = "📋 Список объектов"
	btnDelete    = "🗑 Удалить объект"
	btnBack      = "⬅️ Назад"
	btnYes       = "✅ Да"
	btnNo        = "❌ Нет"
	btnSelectAll = "Выбрать все"
	btnClearSel  = "Сбросить"
	btnDone      = "Готово"
)
