package i18n

// tables holds the UI strings for every supported language. en is complete
// and acts as the fallback for everything else.
var tables = map[string]map[string]string{
	"en": {
		"welcomeTitle":     "Welcome to CampusNexus AI!",
		"welcomeSubtitle":  "Ask questions about your uploaded documents and I'll provide accurate answers with sources.",
		"chatPlaceholder":  "Ask anything about your documents...",
		"sendButton":       "Send",
		"uploadTitle":      "Drag & Drop Documents",
		"uploadSubtitle":   "or click to browse",
		"uploadHint":       "Supported: PDF, DOCX, PPTX",
		"analyticsTitle":   "Previous Year Questions Analytics",
		"totalQuestions":   "Total Questions",
		"topicsCovered":    "Topics Covered",
		"yearRange":        "Year Range",
		"graphTitle":       "Knowledge Graph Visualization",
		"graphPlaceholder": "Knowledge graph will appear here",
		"graphHint":        "Upload documents to generate the graph",
		"governanceTitle":  "Governance Panel",
		"pendingApprovals": "Pending Approvals",
		"noPending":        "No pending documents",
		"approve":          "Approve",
		"reject":           "Reject",
		"statusConnected":  "Connected",
		"statusDegraded":   "Degraded",
		"statusOffline":    "Offline",
		"checkingStatus":   "Checking...",
		"keyPatterns":      "Key Patterns",
		"uploadFirst":      "Upload PYQ documents to see analytics",
		"nodes":            "Nodes",
		"edges":            "Edges",
		"density":          "Density",
		"totalDocs":        "Total Documents",
		"pending":          "Pending",
		"approved":         "Approved",
		"rejected":         "Rejected",
		"totalQueries":     "Total Queries",
		"frequency":        "Frequency",
		"importance":       "Importance",
		"confidence":       "Confidence",
		"sources":          "Sources",
		"languageChanged":  "Language changed to English",
		"thinking":         "Thinking...",
		"chatError":        "Sorry, I encountered an error. Please make sure Ollama is running and try again.",
		"uploading":        "Uploading...",
		"uploaded":         "Uploaded (%d chunks)",
		"uploadFailed":     "Upload failed",
		"page":             "Page",
		"rejectPrompt":     "Reason for rejection",
		"rejectDefault":    "Not suitable",
	},
	"hi": {
		"welcomeTitle":     "CampusNexus AI में आपका स्वागत है!",
		"welcomeSubtitle":  "अपने अपलोड किए गए दस्तावेज़ों के बारे में प्रश्न पूछें और मैं सटीक उत्तर स्रोतों के साथ प्रदान करूंगा।",
		"chatPlaceholder":  "अपने दस्तावेज़ों के बारे में कुछ भी पूछें...",
		"sendButton":       "भेजें",
		"uploadTitle":      "दस्तावेज़ खींचें और छोड़ें",
		"uploadSubtitle":   "या ब्राउज़ करने के लिए क्लिक करें",
		"uploadHint":       "समर्थित: PDF, DOCX, PPTX",
		"analyticsTitle":   "पिछले वर्ष के प्रश्न विश्लेषण",
		"totalQuestions":   "कुल प्रश्न",
		"topicsCovered":    "विषय शामिल",
		"yearRange":        "वर्ष सीमा",
		"graphTitle":       "ज्ञान ग्राफ विज़ुअलाइज़ेशन",
		"graphPlaceholder": "ज्ञान ग्राफ यहां दिखाई देगा",
		"graphHint":        "ग्राफ बनाने के लिए दस्तावेज़ अपलोड करें",
		"governanceTitle":  "शासन पैनल",
		"pendingApprovals": "लंबित अनुमोदन",
		"noPending":        "कोई लंबित दस्तावेज़ नहीं",
		"approve":          "अनुमोदित करें",
		"reject":           "अस्वीकार करें",
		"statusConnected":  "कनेक्टेड",
		"statusDegraded":   "खराब",
		"statusOffline":    "ऑफ़लाइन",
		"checkingStatus":   "जांच हो रही है...",
		"keyPatterns":      "मुख्य पैटर्न",
		"uploadFirst":      "विश्लेषण देखने के लिए PYQ दस्तावेज़ अपलोड करें",
		"nodes":            "नोड्स",
		"edges":            "किनारे",
		"density":          "घनत्व",
		"totalDocs":        "कुल दस्तावेज़",
		"pending":          "लंबित",
		"approved":         "अनुमोदित",
		"rejected":         "अस्वीकृत",
		"totalQueries":     "कुल प्रश्न",
		"frequency":        "आवृत्ति",
		"importance":       "महत्व",
		"confidence":       "विश्वास",
		"sources":          "स्रोत",
		"languageChanged":  "भाषा हिंदी में बदल गई",
	},
	"mr": {
		"welcomeTitle":     "CampusNexus AI मध्ये आपले स्वागत आहे!",
		"welcomeSubtitle":  "तुमच्या अपलोड केलेल्या कागदपत्रांबद्दल प्रश्न विचारा आणि मी स्रोतांसह अचूक उत्तरे देईन.",
		"chatPlaceholder":  "तुमच्या कागदपत्रांबद्दल काहीही विचारा...",
		"sendButton":       "पाठवा",
		"uploadTitle":      "कागदपत्रे येथे ड्रॅग आणि ड्रॉप करा",
		"uploadSubtitle":   "किंवा ब्राउझ करण्यासाठी क्लिक करा",
		"uploadHint":       "समर्थित: PDF, DOCX, PPTX",
		"analyticsTitle":   "मागील वर्षाच्या प्रश्नांचे विश्लेषण",
		"totalQuestions":   "एकूण प्रश्न",
		"topicsCovered":    "कव्हर केलेले विषय",
		"yearRange":        "वर्ष श्रेणी",
		"graphTitle":       "ज्ञान ग्राफ व्हिज्युअलायझेशन",
		"graphPlaceholder": "ज्ञान ग्राफ येथे दिसेल",
		"graphHint":        "ग्राफ तयार करण्यासाठी कागदपत्रे अपलोड करा",
		"governanceTitle":  "प्रशासन पॅनेल",
		"pendingApprovals": "प्रलंबित मंजूरी",
		"noPending":        "कोणतीही प्रलंबित कागदपत्रे नाहीत",
		"approve":          "मंजूर करा",
		"reject":           "नाकारा",
		"statusConnected":  "कनेक्ट केलेले",
		"statusDegraded":   "खालावलेले",
		"statusOffline":    "ऑफलाईन",
		"checkingStatus":   "तपासत आहे...",
		"keyPatterns":      "मुख्य नमुने",
		"uploadFirst":      "विश्लेषण पाहण्यासाठी PYQ कागदपत्रे अपलोड करा",
		"nodes":            "नोड्स",
		"edges":            "कडा",
		"density":          "घनता",
		"totalDocs":        "एकूण कागदपत्रे",
		"pending":          "प्रलंबित",
		"approved":         "मंजूर",
		"rejected":         "नाकारलेले",
		"totalQueries":     "एकूण प्रश्न",
		"frequency":        "वारंवारता",
		"importance":       "महत्व",
		"confidence":       "विश्वास",
		"sources":          "स्रोत",
		"languageChanged":  "भाषा मराठीत बदलली आहे",
	},
	"es": {
		"welcomeTitle":     "¡Bienvenido a CampusNexus AI!",
		"welcomeSubtitle":  "Haz preguntas sobre tus documentos subidos y te proporcionaré respuestas precisas con fuentes.",
		"chatPlaceholder":  "Pregunta cualquier cosa sobre tus documentos...",
		"sendButton":       "Enviar",
		"uploadTitle":      "Arrastrar y soltar documentos",
		"uploadSubtitle":   "o haz clic para explorar",
		"uploadHint":       "Compatible: PDF, DOCX, PPTX",
		"analyticsTitle":   "Análisis de preguntas de años anteriores",
		"totalQuestions":   "Total de preguntas",
		"topicsCovered":    "Temas cubiertos",
		"yearRange":        "Rango de años",
		"graphTitle":       "Visualización del grafo de conocimiento",
		"graphPlaceholder": "El grafo de conocimiento aparecerá aquí",
		"graphHint":        "Sube documentos para generar el grafo",
		"governanceTitle":  "Panel de gobernanza",
		"pendingApprovals": "Aprobaciones pendientes",
		"noPending":        "No hay documentos pendientes",
		"approve":          "Aprobar",
		"reject":           "Rechazar",
		"statusConnected":  "Conectado",
		"statusDegraded":   "Degradado",
		"statusOffline":    "Sin conexión",
		"checkingStatus":   "Verificando...",
		"keyPatterns":      "Patrones clave",
		"uploadFirst":      "Sube documentos PYQ para ver análisis",
		"nodes":            "Nodos",
		"edges":            "Aristas",
		"density":          "Densidad",
		"totalDocs":        "Total de documentos",
		"pending":          "Pendiente",
		"approved":         "Aprobado",
		"rejected":         "Rechazado",
		"totalQueries":     "Consultas totales",
		"frequency":        "Frecuencia",
		"importance":       "Importancia",
		"confidence":       "Confianza",
		"sources":          "Fuentes",
		"languageChanged":  "Idioma cambiado a Español",
	},
	"fr": {
		"welcomeTitle":     "Bienvenue sur CampusNexus AI !",
		"welcomeSubtitle":  "Posez des questions sur vos documents téléchargés et je vous fournirai des réponses précises avec des sources.",
		"chatPlaceholder":  "Posez des questions sur vos documents...",
		"sendButton":       "Envoyer",
		"uploadTitle":      "Glisser-déposer des documents",
		"uploadSubtitle":   "ou cliquez pour parcourir",
		"uploadHint":       "Pris en charge : PDF, DOCX, PPTX",
		"analyticsTitle":   "Analyse des questions des années précédentes",
		"totalQuestions":   "Nombre total de questions",
		"topicsCovered":    "Sujets couverts",
		"yearRange":        "Période",
		"graphTitle":       "Visualisation du graphe de connaissances",
		"graphPlaceholder": "Le graphe de connaissances apparaîtra ici",
		"graphHint":        "Téléchargez des documents pour générer le graphe",
		"governanceTitle":  "Panneau de gouvernance",
		"pendingApprovals": "Approbations en attente",
		"noPending":        "Aucun document en attente",
		"approve":          "Approuver",
		"reject":           "Rejeter",
		"statusConnected":  "Connecté",
		"statusDegraded":   "Dégradé",
		"statusOffline":    "Hors ligne",
		"checkingStatus":   "Vérification...",
		"keyPatterns":      "Schémas clés",
		"uploadFirst":      "Téléchargez des documents PYQ pour voir l'analyse",
		"nodes":            "Nœuds",
		"edges":            "Arêtes",
		"density":          "Densité",
		"totalDocs":        "Total des documents",
		"pending":          "En attente",
		"approved":         "Approuvé",
		"rejected":         "Rejeté",
		"totalQueries":     "Requêtes totales",
		"frequency":        "Fréquence",
		"importance":       "Importance",
		"confidence":       "Confiance",
		"sources":          "Sources",
		"languageChanged":  "Langue changée en Français",
	},
	"de": {
		"welcomeTitle":     "Willkommen bei CampusNexus AI!",
		"welcomeSubtitle":  "Stellen Sie Fragen zu Ihren hochgeladenen Dokumenten und ich liefere Ihnen genaue Antworten mit Quellen.",
		"chatPlaceholder":  "Fragen Sie alles über Ihre Dokumente...",
		"sendButton":       "Senden",
		"uploadTitle":      "Dokumente per Drag & Drop ablegen",
		"uploadSubtitle":   "oder klicken Sie zum Durchsuchen",
		"uploadHint":       "Unterstützt: PDF, DOCX, PPTX",
		"analyticsTitle":   "Analyse früherer Jahresfragen",
		"totalQuestions":   "Gesamtzahl der Fragen",
		"topicsCovered":    "Abgedeckte Themen",
		"yearRange":        "Jahresbereich",
		"graphTitle":       "Wissensgraph-Visualisierung",
		"graphPlaceholder": "Der Wissensgraph wird hier angezeigt",
		"graphHint":        "Dokumente hochladen, um den Graphen zu erstellen",
		"governanceTitle":  "Governance-Panel",
		"pendingApprovals": "Ausstehende Genehmigungen",
		"noPending":        "Keine ausstehenden Dokumente",
		"approve":          "Genehmigen",
		"reject":           "Ablehnen",
		"statusConnected":  "Verbunden",
		"statusDegraded":   "Beeinträchtigt",
		"statusOffline":    "Offline",
		"checkingStatus":   "Überprüfen...",
		"keyPatterns":      "Wichtige Muster",
		"uploadFirst":      "PYQ-Dokumente hochladen, um Analysen zu sehen",
		"nodes":            "Knoten",
		"edges":            "Kanten",
		"density":          "Dichte",
		"totalDocs":        "Gesamtdokumente",
		"pending":          "Ausstehend",
		"approved":         "Genehmigt",
		"rejected":         "Abgelehnt",
		"totalQueries":     "Gesamtanfragen",
		"frequency":        "Häufigkeit",
		"importance":       "Wichtigkeit",
		"confidence":       "Vertrauen",
		"sources":          "Quellen",
		"languageChanged":  "Sprache auf Deutsch geändert",
	},
}
