package icons

import "github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"

// catalog lists every built-in icon in registration order. PsJioMart is
// registered twice, matching the upstream icon map; the later entry wins.
var catalog = []Definition{
	{Key: "IcProfile", Category: "account", Keywords: []string{"user", "person", "avatar"}, Build: icProfile},
	{Key: "IcPause", Category: "media", Keywords: []string{"pause", "hold"}, Build: icPause},
	{Key: "IcPlay", Category: "media", Keywords: []string{"play", "start", "resume"}, Build: icPlay},
	{Key: "IcChevronUp", Category: "navigation", Keywords: []string{"up", "expand", "caret"}, Build: icChevronUp},
	{Key: "IcChevronLeft", Category: "navigation", Keywords: []string{"left", "previous", "caret"}, Build: icChevronLeft},
	{Key: "IcChevronRight", Category: "navigation", Keywords: []string{"right", "next", "caret"}, Build: icChevronRight},
	{Key: "IcChevronDown", Category: "navigation", Keywords: []string{"down", "collapse", "caret"}, Build: icChevronDown},
	{Key: "IcConfirm", Category: "action", Keywords: []string{"check", "done", "ok"}, Build: icConfirm},
	{Key: "IcMinus", Category: "action", Keywords: []string{"remove", "subtract", "decrease"}, Build: icMinus},
	{Key: "IcSuccess", Category: "feedback", Keywords: []string{"check", "complete", "done"}, Build: icSuccess},
	{Key: "IcWarning", Category: "feedback", Keywords: []string{"alert", "caution", "attention"}, Build: icWarning},
	{Key: "IcBack", Category: "navigation", Keywords: []string{"previous", "return"}, Build: icBack},
	{Key: "IcFirstpage", Category: "navigation", Keywords: []string{"first", "start", "pagination"}, Build: icFirstpage},
	{Key: "IcLastpage", Category: "navigation", Keywords: []string{"last", "end", "pagination"}, Build: icLastpage},
	{Key: "IcNext", Category: "navigation", Keywords: []string{"forward", "continue"}, Build: icNext},
	{Key: "IcFavorite", Category: "action", Keywords: []string{"heart", "like", "love"}, Build: icFavorite},
	{Key: "IcAlarm", Category: "time", Keywords: []string{"clock", "reminder", "wake"}, Build: icAlarm},
	{Key: "IcUpload", Category: "action", Keywords: []string{"send", "export", "cloud"}, Build: icUpload},
	{Key: "IcClose", Category: "navigation", Keywords: []string{"x", "exit", "cancel", "dismiss"}, Build: icClose},
	{Key: "IcTime", Category: "time", Keywords: []string{"clock", "hour", "schedule"}, Build: icTime},
	{Key: "IcMoreHorizontal", Category: "navigation", Keywords: []string{"menu", "overflow", "dots"}, Build: icMoreHorizontal},
	{Key: "IcList", Category: "content", Keywords: []string{"items", "bullets", "menu"}, Build: icList},
	{Key: "IcCalendar", Category: "time", Keywords: []string{"date", "schedule", "appointment"}, Build: icCalendar},
	{Key: "IcNotification", Category: "communication", Keywords: []string{"bell", "alert", "reminder"}, Build: icNotification},
	{Key: "IcAdd", Category: "action", Keywords: []string{"plus", "create", "new"}, Build: icAdd},
	{Key: "IcMic", Category: "media", Keywords: []string{"microphone", "voice", "audio", "record"}, Build: icMic},
	{Key: "IcVoice", Category: "media", Keywords: []string{"speech", "audio", "assistant"}, Build: icVoice},
	{Key: "IcBurgerMenu", Category: "navigation", Keywords: []string{"hamburger", "menu", "nav"}, Build: icBurgerMenu},
	{Key: "IcStop", Category: "media", Keywords: []string{"halt", "end"}, Build: icStop},
	{Key: "IcSendMessage", Category: "communication", Keywords: []string{"send", "submit", "message"}, Build: icSendMessage},
	{Key: "IcEditPen", Category: "action", Keywords: []string{"edit", "pencil", "write"}, Build: icEditPen},
	{Key: "IcTrash", Category: "action", Keywords: []string{"delete", "remove", "bin"}, Build: icTrash},
	{Key: "PsJioMart", Category: "brand", Keywords: []string{"shopping", "store", "bag"}, Build: psJioMart},
	{Key: "IcPhotoCamera", Category: "media", Keywords: []string{"camera", "photo", "picture"}, Build: icPhotoCamera},
	{Key: "IcCopyDocument", Category: "content", Keywords: []string{"duplicate", "clipboard", "file"}, Build: icCopyDocument},
	{Key: "IcWidgets", Category: "content", Keywords: []string{"apps", "grid", "tiles"}, Build: icWidgets},
	{Key: "IcCopy", Category: "content", Keywords: []string{"duplicate", "clipboard"}, Build: icCopy},
	{Key: "IcMicOff", Category: "media", Keywords: []string{"mute", "microphone", "silent"}, Build: icMicOff},
	{Key: "IcArrowBack", Category: "navigation", Keywords: []string{"back", "previous", "return"}, Build: icArrowBack},
	{Key: "IcSettings", Category: "action", Keywords: []string{"config", "preferences", "options", "gear"}, Build: icSettings},
	{Key: "IcNightClear", Category: "weather", Keywords: []string{"moon", "night", "dark"}, Build: icNightClear},
	{Key: "IcFilterMultiple", Category: "action", Keywords: []string{"filter", "sort", "refine"}, Build: icFilterMultiple},
	{Key: "IcRefresh", Category: "action", Keywords: []string{"reload", "sync", "retry"}, Build: icRefresh},
	{Key: "IcCalendarEvent", Category: "time", Keywords: []string{"event", "meeting", "appointment"}, Build: icCalendarEvent},
	{Key: "IcCalendarWeek", Category: "time", Keywords: []string{"week", "schedule", "planner"}, Build: icCalendarWeek},
	{Key: "IcTask", Category: "content", Keywords: []string{"todo", "checklist", "assignment"}, Build: icTask},
	{Key: "IcChat", Category: "communication", Keywords: []string{"message", "conversation", "bubble"}, Build: icChat},
	{Key: "IcSearch", Category: "action", Keywords: []string{"find", "lookup", "query", "magnifier"}, Build: icSearch},
	{Key: "IcCloseRemove", Category: "action", Keywords: []string{"remove", "clear", "cancel"}, Build: icCloseRemove},
	{Key: "IcDocument", Category: "content", Keywords: []string{"file", "page", "paper"}, Build: icDocument},
	{Key: "IcText", Category: "content", Keywords: []string{"type", "font", "typography"}, Build: icText},
	{Key: "IcInfo", Category: "feedback", Keywords: []string{"information", "help", "about"}, Build: icInfo},
	{Key: "IcDislike", Category: "action", Keywords: []string{"thumbs down", "downvote"}, Build: icDislike},
	{Key: "IcLike", Category: "action", Keywords: []string{"thumbs up", "upvote"}, Build: icLike},
	{Key: "PsJioMart", Category: "brand", Keywords: []string{"shopping", "store", "bag"}, Build: psJioMart},
	{Key: "IcShare", Category: "action", Keywords: []string{"send", "forward", "social"}, Build: icShare},
	{Key: "IcDownload", Category: "action", Keywords: []string{"save", "import", "cloud"}, Build: icDownload},
	{Key: "IcStopwatch", Category: "time", Keywords: []string{"timer", "countdown", "duration"}, Build: icStopwatch},
	{Key: "IcTheme", Category: "appearance", Keywords: []string{"palette", "color", "style"}, Build: icTheme},
	{Key: "IcAccessibility", Category: "appearance", Keywords: []string{"a11y", "person", "access"}, Build: icAccessibility},
}

func icProfile() svg.Element {
	return svg.Root("0 0 24 24",
		svg.New("path", []svg.Attr{svg.A("fill-rule", "evenodd"), svg.A("clip-rule", "evenodd"), svg.A("d", "M16 6a4 4 0 11-8 0 4 4 0 018 0zm4 10.5c0 3.038-3.582 5.5-8 5.5s-8-2.462-8-5.5S7.582 11 12 11s8 2.462 8 5.5z"), svg.A("fill", "currentColor")}),
	)
}

func icPause() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M8.5 4A1.5 1.5 0 007 5.5v13a1.5 1.5 0 003 0v-13A1.5 1.5 0 008.5 4zm7 0A1.5 1.5 0 0014 5.5v13a1.5 1.5 0 103 0v-13A1.5 1.5 0 0015.5 4z", "currentColor"),
	)
}

func icPlay() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M19.15 10.36l-10-7A2 2 0 008 3a1.88 1.88 0 00-.92.23A2 2 0 006 5v14a2 2 0 001.08 1.77c.282.154.599.233.92.23a2 2 0 001.15-.36l10-7a2 2 0 000-3.28z", "currentColor"),
	)
}

func icChevronUp() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M16 15a.998.998 0 01-.71-.29L12 11.41l-3.29 3.3a1.004 1.004 0 01-1.42-1.42l4-4a.999.999 0 011.42 0l4 4A1.001 1.001 0 0116 15z", "currentColor"),
	)
}

func icChevronLeft() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M14 17a1.003 1.003 0 01-.71-.29l-4-4a1 1 0 010-1.42l4-4a1.005 1.005 0 011.42 1.42L11.41 12l3.3 3.29a.997.997 0 01.219 1.095.999.999 0 01-.93.615z", "currentColor"),
	)
}

func icChevronRight() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M10 17a1.002 1.002 0 01-1.006-1 1 1 0 01.296-.71l3.3-3.29-3.3-3.29a1.004 1.004 0 011.42-1.42l4 4a.997.997 0 01.219 1.095.999.999 0 01-.22.325l-4 4A1 1 0 0110 17z", "currentColor"),
	)
}

func icChevronDown() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 15a1.002 1.002 0 01-.71-.29l-4-4a1.004 1.004 0 111.42-1.42l3.29 3.3 3.29-3.3a1.004 1.004 0 111.42 1.42l-4 4A1.001 1.001 0 0112 15z", "currentColor"),
	)
}

func icConfirm() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M9 19a1.002 1.002 0 01-.71-.29l-5-5a1.004 1.004 0 111.42-1.42L9 16.59l10.29-10.3a1.004 1.004 0 111.42 1.42l-11 11A1 1 0 019 19z", "currentColor"),
	)
}

func icMinus() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M3.293 11.293A1 1 0 014 11h16a1 1 0 010 2H4a1 1 0 01-.707-1.707z", "currentColor"),
	)
}

func icSuccess() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a10 10 0 100 20 10 10 0 000-20zm5.21 7.71l-6 6a1.002 1.002 0 01-1.42 0l-3-3a1.003 1.003 0 111.42-1.42l2.29 2.3 5.29-5.3a1.004 1.004 0 011.42 1.42z", "currentColor"),
	)
}

func icWarning() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a10 10 0 100 20 10 10 0 000-20zm-1 4.5a1 1 0 012 0v6a1 1 0 01-2 0v-6zm1 12a1.5 1.5 0 110-3 1.5 1.5 0 010 3z", "currentColor"),
	)
}

func icBack() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M15 20a1.003 1.003 0 01-.71-.29l-7-7a1 1 0 010-1.42l7-7a1.005 1.005 0 011.42 1.42L9.41 12l6.3 6.29a.997.997 0 01.219 1.095.999.999 0 01-.93.615z", "currentColor"),
	)
}

func icFirstpage() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M7 4c-.55 0-1 .45-1 1v14c0 .55.45 1 1 1s1-.45 1-1V5c0-.55-.45-1-1-1zm5.41 8l6.29-6.29a.996.996 0 10-1.41-1.41l-7 7a.996.996 0 000 1.41l7 7c.2.2.45.29.71.29.26 0 .51-.1.71-.29a.996.996 0 000-1.41l-6.29-6.29-.01-.01z", "currentColor"),
	)
}

func icLastpage() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M6.71 4.29A.996.996 0 105.3 5.7l6.29 6.29-6.29 6.29a.996.996 0 00.71 1.7c.26 0 .51-.1.71-.29l7-7a.996.996 0 000-1.41L6.71 4.29zM17 4c-.55 0-1 .45-1 1v14c0 .55.45 1 1 1s1-.45 1-1V5c0-.55-.45-1-1-1z", "currentColor"),
	)
}

func icNext() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M9 20a1.002 1.002 0 01-1.006-1 1 1 0 01.296-.71l6.3-6.29-6.3-6.29a1.004 1.004 0 011.42-1.42l7 7a.997.997 0 01.219 1.095.999.999 0 01-.22.325l-7 7A1 1 0 019 20z", "currentColor"),
	)
}

func icFavorite() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M15.6 4A5.6 5.6 0 0012 5.46 5.6 5.6 0 008.4 4 5.36 5.36 0 003 9.44c0 3.37 2.63 6.43 7.16 10.56l.49.45a2 2 0 002.7 0l.49-.44C18.37 15.86 21 12.8 21 9.44A5.36 5.36 0 0015.6 4z", "currentColor"),
	)
}

func icAlarm() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M3.88 6.71l2.83-2.83a1.004 1.004 0 00-1.42-1.42L2.46 5.29a1.004 1.004 0 101.42 1.42zm17.66-1.42l-2.83-2.83a1.004 1.004 0 10-1.42 1.42l2.83 2.83a1.004 1.004 0 001.42-1.42zM12 4a9 9 0 00-7.46 14l-1.25 1.29a1.004 1.004 0 101.42 1.42l1.14-1.15a9 9 0 0012.3 0l1.14 1.15a1.004 1.004 0 101.42-1.42L19.46 18A9 9 0 0012 4zm2.12 11.12a1 1 0 01-1.41 0l-1.42-1.41a1.15 1.15 0 01-.21-.33A1.001 1.001 0 0111 13V8a1 1 0 012 0v4.59l1.12 1.12a1 1 0 010 1.41z", "currentColor"),
	)
}

func icUpload() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M7.71 8.71L11 5.41V17a1 1 0 102 0V5.41l3.29 3.3a.999.999 0 001.42 0 1.001 1.001 0 000-1.42l-5-5a1 1 0 00-1.42 0l-5 5a1.004 1.004 0 101.42 1.42zM17 20H7a1 1 0 000 2h10a1 1 0 100-2z", "currentColor"),
	)
}

func icClose() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M13.41 12l6.3-6.29a1.004 1.004 0 00-1.42-1.42L12 10.59l-6.29-6.3a1.004 1.004 0 10-1.42 1.42l6.3 6.29-6.3 6.29a.999.999 0 000 1.42 1 1 0 001.42 0l6.29-6.3 6.29 6.3a1.001 1.001 0 001.639-.325 1 1 0 00-.22-1.095L13.41 12z", "currentColor"),
	)
}

func icTime() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a10 10 0 100 20 10 10 0 000-20zm1 11a1 1 0 01-1 1H9a1 1 0 010-2h2V9a1 1 0 012 0v4z", "currentColor"),
	)
}

func icMoreHorizontal() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M5.5 10.5a1.5 1.5 0 100 3 1.5 1.5 0 000-3zm6.5 0a1.5 1.5 0 100 3 1.5 1.5 0 000-3zm6.5 0a1.5 1.5 0 100 3 1.5 1.5 0 000-3z", "currentColor"),
	)
}

func icList() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20 17H9a1 1 0 000 2h11a1 1 0 000-2zm0-6H9a1 1 0 000 2h11a1 1 0 000-2zM9 7h11a1 1 0 100-2H9a1 1 0 000 2zM4.5 4.5a1.5 1.5 0 100 3 1.5 1.5 0 000-3zm0 6a1.5 1.5 0 100 3 1.5 1.5 0 000-3zm0 6a1.5 1.5 0 100 3 1.5 1.5 0 000-3z", "currentColor"),
	)
}

func icCalendar() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M18 3h-1a1 1 0 00-2 0H9a1 1 0 00-2 0H6a3 3 0 00-3 3v12a3 3 0 003 3h12a3 3 0 003-3V6a3 3 0 00-3-3zm-4.5 14a1 1 0 01-2 0v-3.59l-.29.3a1.004 1.004 0 11-1.42-1.42l2-2a.999.999 0 011.09-.21 1 1 0 01.62.92v6zM19 7H5V6a1 1 0 011-1h1a1 1 0 002 0h6a1 1 0 002 0h1a1 1 0 011 1v1z", "currentColor"),
	)
}

func icNotification() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M21 16h-1v-6a8 8 0 00-16 0v6H3a1 1 0 000 2h18a1 1 0 000-2zm-9 6a3 3 0 003-3H9a3 3 0 003 3z", "currentColor"),
	)
}

func icAdd() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20 11h-7V4a1 1 0 00-2 0v7H4a1 1 0 000 2h7v7a1 1 0 002 0v-7h7a1 1 0 000-2z", "currentColor"),
	)
}

func icMic() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 15a3 3 0 003-3V5a3 3 0 00-6 0v7a3 3 0 003 3zm6-5a1 1 0 00-1 1v1a5 5 0 11-10 0v-1a1 1 0 10-2 0v1a7 7 0 1014 0v-1a1 1 0 00-1-1zm-3 10H9a1 1 0 000 2h6a1 1 0 000-2z", "currentColor"),
	)
}

func icVoice() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a1 1 0 00-1 1v18a1 1 0 002 0V3a1 1 0 00-1-1zM4 9a1 1 0 00-1 1v4a1 1 0 102 0v-4a1 1 0 00-1-1zm4-3a1 1 0 00-1 1v10a1 1 0 102 0V7a1 1 0 00-1-1zm12 3a1 1 0 00-1 1v4a1 1 0 002 0v-4a1 1 0 00-1-1zm-4-3a1 1 0 00-1 1v10a1 1 0 002 0V7a1 1 0 00-1-1z", "currentColor"),
	)
}

func icBurgerMenu() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M4 7h16a1 1 0 100-2H4a1 1 0 000 2zm16 10H4a1 1 0 000 2h16a1 1 0 000-2zm0-6H4a1 1 0 000 2h16a1 1 0 000-2z", "currentColor"),
	)
}

func icStop() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M16.84 4H7.16A3.16 3.16 0 004 7.16v9.68A3.16 3.16 0 007.16 20h9.68A3.16 3.16 0 0020 16.84V7.16A3.16 3.16 0 0016.84 4z", "currentColor"),
	)
}

func icSendMessage() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M19.79 10.16l-14-6A2 2 0 005 4a2 2 0 00-1.965 2.398 2 2 0 00.355.792L6.76 12l-3.35 4.79a2 2 0 002.38 3.05l14-6a2 2 0 000-3.68z", "currentColor"),
	)
}

func icEditPen() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M19.5 4.5a3.54 3.54 0 00-5 0l-.29.29 5 5 .29-.29a3.54 3.54 0 000-5zm-13.95 9a3 3 0 00-.76 1.3l-1 3.65a1.5 1.5 0 001.81 1.81l3.65-1.05a3 3 0 001.3-.76l7.24-7.24-5-5-7.24 7.29z", "currentColor"),
	)
}

func icTrash() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20 6h-2V5a3 3 0 00-3-3H9a3 3 0 00-3 3v1H4a1 1 0 000 2h1v11a3 3 0 003 3h8a3 3 0 003-3V8h1a1 1 0 100-2zM9 18a1 1 0 11-2 0v-7a1 1 0 112 0v7zm4 0a1 1 0 01-2 0v-7a1 1 0 012 0v7zm4 0a1 1 0 01-2 0v-7a1 1 0 012 0v7zM8 5a1 1 0 011-1h6a1 1 0 011 1v1H8V5z", "currentColor"),
	)
}

func psJioMart() svg.Element {
	return svg.Root("0 0 32 32",
		svg.New("g", []svg.Attr{svg.A("clip-path", "url(#ps_jio_mart_svg__clip0_4932_101314)")},
			svg.New("path", []svg.Attr{svg.A("fill", "#E30513"), svg.A("d", "M0 0h32v32H0z")}),
			svg.Path("M23.39 11.65a1.998 1.998 0 00-1.48-.65H20v-1a4 4 0 10-8 0v1h-1.91a2 2 0 00-1.48.65 2.05 2.05 0 00-.52 1.52l.76 9.08a3 3 0 003 2.75h8.32a3 3 0 003-2.75l.76-9.08a2.05 2.05 0 00-.54-1.52zM14 10a2 2 0 014 0v1h-4v-1z", "#fff"),
		),
		svg.New("defs", nil,
			svg.New("clipPath", []svg.Attr{svg.A("id", "ps_jio_mart_svg__clip0_4932_101314")},
				svg.New("rect", []svg.Attr{svg.A("width", "32"), svg.A("height", "32"), svg.A("rx", "16"), svg.A("fill", "#fff")}),
			),
		),
	)
}

func icPhotoCamera() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M19 6h-7V5a1 1 0 00-1-1H7a1 1 0 00-1 1v1H5a3.12 3.12 0 00-3 3.23v7.54A3.12 3.12 0 005 20h14a3.12 3.12 0 003-3.23V9.23A3.12 3.12 0 0019 6zm-7 10a3 3 0 110-5.999A3 3 0 0112 16z", "currentColor"),
	)
}

func icCopyDocument() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12.33 8.82V6H4.87A1.88 1.88 0 003 7.88v12.24A1.88 1.88 0 004.87 22h10.26A1.88 1.88 0 0017 20.12v-9.41h-2.8a1.88 1.88 0 01-1.87-1.89zm8.08-3.23l-3-3A2 2 0 0016 2H8a2 2 0 00-2 2h7a3 3 0 012.12.88l3 3A3 3 0 0119 10v9a2 2 0 002-2V7a2 2 0 00-.59-1.41z", "currentColor"),
	)
}

func icWidgets() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M9 3H5a2 2 0 00-2 2v4a2 2 0 002 2h4a2 2 0 002-2V5a2 2 0 00-2-2zm0 10H5a2 2 0 00-2 2v4a2 2 0 002 2h4a2 2 0 002-2v-4a2 2 0 00-2-2zm12.16-7.41l-2.75-2.75a2 2 0 00-2.82 0l-2.75 2.75a2 2 0 000 2.82l2.75 2.75a2 2 0 002.82 0l2.75-2.75a2 2 0 000-2.82zM19 13h-4a2 2 0 00-2 2v4a2 2 0 002 2h4a2 2 0 002-2v-4a2 2 0 00-2-2z", "currentColor"),
	)
}

func icCopy() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M13 8H5a3 3 0 00-3 3v8a3 3 0 003 3h8a3 3 0 003-3v-8a3 3 0 00-3-3zm6-6h-8a3 3 0 00-3 3v1h5a5 5 0 015 5v5h1a3 3 0 003-3V5a3 3 0 00-3-3z", "currentColor"),
	)
}

func icMicOff() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M7.07 12.69A5.2 5.2 0 017 12v-1a1 1 0 10-2 0v1a7 7 0 00.41 2.34l1.66-1.65zM12 2a3 3 0 00-3 3v5.76l6-6A3 3 0 0012 2zm3 18H9a1 1 0 000 2h6a1 1 0 100-2zm-3-5a3 3 0 003-3v-1.56L20.49 5a1.055 1.055 0 00-.745-1.799A1.053 1.053 0 0019 3.51L3.51 19A1.055 1.055 0 005 20.49l2.87-2.88A7 7 0 0019 12v-1a1 1 0 00-2 0v1a5 5 0 01-7.73 4.18l1.46-1.47A3 3 0 0012 15z", "currentColor"),
	)
}

func icArrowBack() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M2.29 12.71l6 6a1.004 1.004 0 101.42-1.42L5.41 13H21a1 1 0 100-2H5.41l4.3-4.29a1 1 0 000-1.42 1 1 0 00-1.42 0l-6 6a1 1 0 000 1.42z", "currentColor"),
	)
}

func icSettings() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20.43 13.4L19 12.58v-1.16l1.43-.82a2 2 0 00.73-2.73l-1-1.74a2 2 0 00-2.73-.73l-1.18.68-.25.15-1-.58V4a2 2 0 00-2-2h-2a2 2 0 00-2 2v1.65l-.25.14-.75.44-.25-.15-1.18-.68a2 2 0 00-2.73.73l-1 1.74a2 2 0 00.73 2.73l1.43.82v1.16l-1.43.82a2 2 0 00-.73 2.73l1 1.74a2 2 0 002.73.73L8 17.77l1 .58V20a2 2 0 002 2h2a2 2 0 002-2v-1.65l1-.58 1.43.83a2 2 0 002.73-.73l1-1.74a2 2 0 00-.73-2.73zM12 15a3 3 0 110-6 3 3 0 010 6z", "currentColor"),
	)
}

func icNightClear() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M14.94 8.24c-.5 3.43-3.28 6.2-6.7 6.7-1.74.26-3.38-.05-4.79-.76-.87-.44-1.77.49-1.34 1.35 1.74 3.45 5.42 5.76 9.61 5.48 4.91-.33 8.96-4.37 9.29-9.29a9.976 9.976 0 00-5.48-9.61c-.87-.44-1.79.47-1.35 1.34.71 1.41 1.02 3.05.76 4.79z", "currentColor"),
	)
}

func icFilterMultiple() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M4 7h9.18a3 3 0 005.64 0H20a1 1 0 100-2h-1.18a3 3 0 00-5.64 0H4a1 1 0 000 2zm12-2a1 1 0 110 2 1 1 0 010-2zm4 12h-1.18a3 3 0 00-5.64 0H4a1 1 0 000 2h9.18a3 3 0 005.64 0H20a1 1 0 100-2zm-4 2a1 1 0 110-2 1 1 0 010 2zm4-8h-9.18a3 3 0 00-5.64 0H4a1 1 0 000 2h1.18a3 3 0 005.64 0H20a1 1 0 100-2zM8 13a1 1 0 110-2 1 1 0 010 2z", "currentColor"),
	)
}

func icRefresh() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 4a8 8 0 013.85 1H15a1 1 0 100 2h3a1 1 0 001-1V3a1 1 0 00-2 0v.36A10 10 0 0012 2a10 10 0 00-8.65 5A9.94 9.94 0 002 12a1 1 0 102 0 8 8 0 018-8zm9.71 7.29A1 1 0 0020 12a8 8 0 01-11.84 7H9a1 1 0 000-2H6a1 1 0 00-1 1v3a1 1 0 102 0v-.36A10 10 0 0012 22a10 10 0 0010-10 1 1 0 00-.29-.71z", "currentColor"),
	)
}

func icCalendarEvent() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M18 3h-1a1 1 0 00-2 0H9a1 1 0 00-2 0H6a3 3 0 00-3 3v12a3 3 0 003 3h12a3 3 0 003-3V6a3 3 0 00-3-3zm-1.79 8.71l-5 5a1.002 1.002 0 01-1.42 0l-2-2a1.003 1.003 0 111.42-1.42l1.29 1.3 4.29-4.3a1.004 1.004 0 011.42 1.42zM19 7H5V6a1 1 0 011-1h1a1 1 0 002 0h6a1 1 0 002 0h1a1 1 0 011 1v1z", "currentColor"),
	)
}

func icCalendarWeek() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20.12 3.88A3 3 0 0018 3h-1a1 1 0 00-2 0H9a1 1 0 00-2 0H6a3 3 0 00-3 3v12a3 3 0 003 3h12a3 3 0 003-3V6a3 3 0 00-.88-2.12zM8 17a1 1 0 110-2 1 1 0 010 2zm0-4a1 1 0 110-2 1 1 0 010 2zm4 4a1 1 0 110-2 1 1 0 010 2zm0-4a1 1 0 110-2 1 1 0 010 2zm4 0a1 1 0 110-2 1 1 0 010 2zm3-6H5V6a1 1 0 011-1h1a1 1 0 002 0h6a1 1 0 002 0h1a1 1 0 011 1v1z", "currentColor"),
	)
}

func icTask() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20 8V6a3 3 0 00-3-3h-1.28A2 2 0 0014 2h-4a2 2 0 00-1.72 1H7a3 3 0 00-3 3v13a3 3 0 003 3h10a3 3 0 003-3v-1a2 2 0 002-2v-6a2 2 0 00-2-2zm-2 11a1 1 0 01-1 1H7a1 1 0 01-1-1V6a1 1 0 011-1h1.28A2 2 0 0010 6h4a2 2 0 001.72-1H17a1 1 0 011 1v2h-6a2 2 0 00-2 2v6a2 2 0 002 2h6v1zm.71-6.79l-3 3a1.002 1.002 0 01-1.42 0l-1-1a1.004 1.004 0 111.42-1.42l.29.3 2.29-2.3a1.004 1.004 0 111.42 1.42z", "currentColor"),
	)
}

func icChat() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M15 4H9a7 7 0 00-1 13.92V20a1.5 1.5 0 002.4 1.2l4.27-3.2H15a7 7 0 000-14zm-7 8a1 1 0 110-2 1 1 0 010 2zm4 0a1 1 0 110-2 1 1 0 010 2zm4 0a1 1 0 110-2 1 1 0 010 2z", "currentColor"),
	)
}

func icSearch() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M10.004 2a7 7 0 015.6 11.19l6.11 6.1a1.002 1.002 0 01-.325 1.639.999.999 0 01-1.095-.219l-6.1-6.11A7 7 0 1110.004 2zm0 12a5 5 0 100-10 5 5 0 000 10z", "currentColor"),
	)
}

func icCloseRemove() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a10 10 0 100 20 10 10 0 000-20zm3.71 12.29a1.002 1.002 0 01-.325 1.639 1 1 0 01-1.095-.219L12 13.41l-2.29 2.3a1 1 0 01-1.639-.325 1 1 0 01.219-1.095l2.3-2.29-2.3-2.29a1.004 1.004 0 011.42-1.42l2.29 2.3 2.29-2.3a1.004 1.004 0 011.42 1.42L13.41 12l2.3 2.29z", "currentColor"),
	)
}

func icDocument() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M13 6V2H7.5A2.5 2.5 0 005 4.5v15A2.5 2.5 0 007.5 22h10a2.5 2.5 0 002.5-2.5V9h-4a3 3 0 01-3-3zm3 1h4a2 2 0 00-.59-1.41l-3-3A2 2 0 0015 2v4a1 1 0 001 1z", "currentColor"),
	)
}

func icText() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M20 3H4c-.55 0-1 .45-1 1v3c0 .55.45 1 1 1s1-.45 1-1V5h6v14H9c-.55 0-1 .45-1 1s.45 1 1 1h6c.55 0 1-.45 1-1s-.45-1-1-1h-2V5h6v2c0 .55.45 1 1 1s1-.45 1-1V4c0-.55-.45-1-1-1z", "currentColor"),
	)
}

func icInfo() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2a10 10 0 100 20 10 10 0 000-20zm0 3.5a1.5 1.5 0 110 3 1.5 1.5 0 010-3zm2 12h-4a1 1 0 010-2h1v-3h-1a1 1 0 010-2h2a1 1 0 011 1v4h1a1 1 0 010 2z", "currentColor"),
	)
}

func icDislike() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M3.568 6.67l-.55 5A3 3 0 005.998 15h4v3.92a2 2 0 003.94.56l1-4c.04-.157.06-.318.06-.48V4h-8.45a3 3 0 00-2.98 2.67zM18.998 4h-2v11h2a2 2 0 002-2V6a2 2 0 00-2-2z", "currentColor"),
	)
}

func icLike() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M3 11v7a2 2 0 002 2h2V9H5a2 2 0 00-2 2zm17.24-1A3 3 0 0018 9h-4V5.08a2 2 0 00-3.94-.57l-1 4A2.12 2.12 0 009 9v11h8.44a3 3 0 003-2.67l.55-5a2.999 2.999 0 00-.75-2.33z", "currentColor"),
	)
}

func icShare() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M18 15a3 3 0 00-2.15.91L8 12.27c.005-.09.005-.18 0-.27.005-.09.005-.18 0-.27l7.88-3.64A3 3 0 1015 6c-.005.09-.005.18 0 .27L7.15 9.91a3 3 0 100 4.18L15 17.73c-.005.09-.005.18 0 .27a3 3 0 103-3z", "currentColor"),
	)
}

func icDownload() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M16 20H8c-.55 0-1-.45-1-1s.45-1 1-1h8c.55 0 1 .45 1 1s-.45 1-1 1zM16.71 10.29a.996.996 0 00-1.41 0l-2.29 2.29V4.99c0-.55-.45-1-1-1s-1 .45-1 1v7.59l-2.29-2.29a.996.996 0 10-1.41 1.41l4 4c.2.2.45.29.71.29.26 0 .51-.1.71-.29l4-4a.996.996 0 000-1.41h-.02z", "currentColor"),
	)
}

func icStopwatch() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M10 4h4a1 1 0 100-2h-4a1 1 0 000 2zm8.71 2.71a1 1 0 101.41-1.42l-1.41-1.41a1 1 0 10-1.42 1.41l1.42 1.42zM12 5a8.5 8.5 0 108.5 8.5A8.51 8.51 0 0012 5zm1 8a1 1 0 01-2 0V9a1 1 0 012 0v4z", "currentColor"),
	)
}

func icTheme() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M19 2h-8a3 3 0 00-3 3v3H5a3 3 0 00-3 3v8a3 3 0 003 3h8a3 3 0 003-3v-3h3a3 3 0 003-3V5a3 3 0 00-3-3zm-5 17a1 1 0 01-1 1H5a1 1 0 01-1-1v-8a1 1 0 011-1h8a1 1 0 011 1v8z", "currentColor"),
	)
}

func icAccessibility() svg.Element {
	return svg.Root("0 0 24 24",
		svg.Path("M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 3c.83 0 1.5.67 1.5 1.5S12.83 8 12 8s-1.5-.67-1.5-1.5S11.17 5 12 5zm5.24 4.97l-3.74.94v1.86l2.39 4.79c.25.49.05 1.09-.45 1.34a1.007 1.007 0 01-1.35-.44l-2.11-4.21-2.11 4.21a1.007 1.007 0 01-1.35.44 1.01 1.01 0 01-.45-1.34l2.39-4.79v-1.86l-3.74-.94a1 1 0 01.48-1.94l3.88.97h1.75l3.88-.97a.995.995 0 011.21.73.995.995 0 01-.73 1.21h.05z", "currentColor"),
	)
}
