package seed

// programEntry is one program together with its study plan, keyed by the
// academic year rank (1..3)
type programEntry struct {
	name        string
	description string
	subjects    map[int][]string
}

// yearEntry is one academic year in display order
type yearEntry struct {
	name string
	rank int
}

var academicYears = []yearEntry{
	{name: "1er Año", rank: 1},
	{name: "2do Año", rank: 2},
	{name: "3er Año", rank: 3},
}

// catalog holds the institute's full study plan. The seeder upserts it on
// startup, so editing this table is how new subjects reach production.
var catalog = []programEntry{
	{
		name:        "Producción de Multimedios",
		description: "Tecnicatura Superior en Producción de Multimedios",
		subjects: map[int][]string{
			1: {
				"Política y Derecho a la Comunicación",
				"Psicología de la Comunicación",
				"Historia de los Medios y Sistemas de Comunicación",
				"Redacción y Lenguaje Digital",
				"Géneros Radiales y Televisivos",
				"Introducción a los Multimedios",
				"Realización Audiovisual",
			},
			2: {
				"Inglés Técnico",
				"Técnicas de Investigación en la Producción de Multimedios",
				"Lenguaje Radiofónico",
				"Medios Interactivos",
				"Lenguaje, Edición y Montaje Audiovisual",
				"Fotografía e Imagen Digital",
				"Expresión Oral y Doblaje",
			},
			3: {
				"Gestión y Estrategias Comunicacionales",
				"Periodismo Digital",
				"Diseño Gráfico",
				"Producciones Audiovisuales",
				"Marketing y Publicidad Digital",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Gestión de Energías Renovables",
		description: "Tecnicatura Superior en Gestión de Energías Renovables",
		subjects: map[int][]string{
			1: {
				"Comunicación Oral y Escrita",
				"Problemáticas Socioculturales Contemporáneas",
				"Análisis Matemático",
				"Física",
				"Química",
				"Materiales y Procesos Productivos",
				"Electrotécnica",
				"Introducción a las Energías Renovables",
			},
			2: {
				"Tecnologías de la Información y la Representación",
				"Probabilidad y Estadística",
				"Gestión Ambiental",
				"Instalaciones Eléctricas",
				"Instalaciones Térmicas y Fluidos",
				"Energía Hidráulica",
				"Energía Solar",
				"Práctica Profesionalizante I",
			},
			3: {
				"Ética y Formación Profesional",
				"Seguridad Ocupacional",
				"Automatización",
				"Gestión de las Energías Renovables",
				"Instalaciones de Energías Renovables",
				"Energía Eólica",
				"Energía de la Biomasa",
				"Práctica Profesionalizante II",
			},
		},
	},
	{
		name:        "Petróleo y Gas",
		description: "Tecnicatura Superior en Petróleo y Gas",
		subjects: map[int][]string{
			1: {
				"Química",
				"Inglés Técnico",
				"Informática Aplicada",
				"Matemática",
				"Física General",
				"Introducción a la Industria de Hidrocarburos",
				"Geología y Reservorios",
				"Ambiente en Yacimientos",
			},
			2: {
				"Estática y Resistencia de Materiales",
				"Mecánica de Fluidos",
				"Mediciones e Instalaciones Eléctricas",
				"Automatismos y Control",
				"Termodinámica y Máquinas Térmicas",
				"Perforación y Terminación de Pozos",
				"Sistemas Integrados de Gestión",
				"Instalaciones de Superficie de Producción",
			},
			3: {
				"Evaluación de Proyectos",
				"Captación y Tratamiento de Gas",
				"Producción",
				"Recuperación Asistida",
				"Mantenimiento y Confiabilidad",
				"Seguridad en Yacimientos",
				"Formación y Desarrollo Profesional",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Mantenimiento Industrial",
		description: "Tecnicatura Superior en Mantenimiento Industrial",
		subjects: map[int][]string{
			1: {
				"Informática",
				"Inglés",
				"Matemática",
				"Física",
				"Química",
				"Mantenimiento Industrial",
			},
			2: {
				"Sistemas de Representación Gráfica",
				"Probabilidad y Estadística",
				"Tecnología Mecánica y de los Materiales",
				"Metrología y Mediciones Eléctricas",
				"Tecnología del Frío y del Calor",
				"Electrotecnia",
				"Instalaciones, Máquinas y Equipos Industriales",
			},
			3: {
				"Hidráulica y Neumática",
				"Logística",
				"Seguridad, Higiene y Protección Ambiental",
				"Motores de combustión",
				"Técnicas Modernas de Mantenimiento",
				"Electrónica, Automatismos y Control",
				"Instalaciones Eléctricas",
				"Electricidad",
				"Soldadura",
				"Máquinas - Herramientas",
				"Formación y Desarrollo Profesional",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Logística",
		description: "Tecnicatura Superior en Logística",
		subjects: map[int][]string{
			1: {
				"Problemáticas Socioculturales Contemporáneas",
				"Inglés",
				"Informática",
				"Análisis Matemático",
				"Economía",
				"Seguridad e Higiene",
				"Logística I",
				"Derecho del Transporte",
			},
			2: {
				"Probabilidad y Estadística",
				"Inglés Técnico",
				"Logística II",
				"Proyección Presupuestaria y Costos",
				"Derecho en Logística y Normativa Aduanera",
				"Gestión de Compras y Contrataciones",
				"Gestión del Transporte",
				"Práctica Informática vinculada a la Logística",
			},
			3: {
				"Ética y Formación Profesional",
				"Administración de Operaciones Logísticas",
				"Procesos Industriales Asociados",
				"Sistemas Integrados de Gestión",
				"Control Estadístico de Procesos",
				"Gestión de Almacenes",
				"Estrategia Logística",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Producción Industrial de Alimentos",
		description: "Tecnicatura Superior en Producción Industrial de Alimentos",
		subjects: map[int][]string{
			1: {
				"Informática",
				"Matemática",
				"Química General",
				"Física General",
				"Biología Celular",
				"Producción Alimentaria",
				"Tecnología de los Alimentos",
			},
			2: {
				"Inglés",
				"Control de los Procesos y Automatismos",
				"Procesos Productivos",
				"Estadística",
				"Química de los Alimentos",
				"Microbiología de los Alimentos",
				"Tecnología de la Producción",
				"Laboratorio de Producción de Conservas",
				"Laboratorio de Producción de Confituras",
			},
			3: {
				"Logística",
				"Gestión de la Calidad y la Inocuidad de los Alimentos",
				"Bromatología",
				"Proyecto Industrial",
				"Laboratorio de Producción Industrial",
				"Toxicología Alimentaria",
				"Formación y Desarrollo Profesional",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Confección de Indumentaria y Productos Textiles",
		description: "Tecnicatura Superior en Confección de Indumentaria y Productos Textiles",
		subjects: map[int][]string{
			1: {
				"Matemática",
				"Inglés I",
				"Tecnologías de la Información y la Com.",
				"Química",
				"Gestión de las Organizaciones",
				"Economía de la Empresa",
				"Procesos Productivos",
				"Control de Calidad",
				"Dibujo Técnico",
				"Moldería I",
			},
			2: {
				"Inglés II",
				"Gestión de Calidad, Seguridad y Ambiente",
				"Marco Jurídico Procesos Productivos",
				"Tec. de los Materiales y Proc. de Fab. Textil",
				"Proc. de Prod. y Conf. Textil Industrializada",
				"Moldería II",
				"Corte y Confección",
				"Diseño I",
			},
			3: {
				"Informática Apl. a la Ind. de la Confección",
				"Fibras Textiles",
				"Corte Industrial",
				"Diseño II",
				"Proyecto Tecnológico Especifico",
				"Costura Industrial",
				"Geometrales",
				"Planif. y Control de la Producción Textil",
				"Práctica Profesional Integral",
			},
		},
	},
	{
		name:        "Gestión Administrativa orientada a la producción",
		description: "Tecnicatura Superior en Gestión Administrativa orientada a la producción",
		subjects: map[int][]string{
			1: {
				"Matemática aplicada con orientación financiera",
				"Inglés Introductorio",
				"Gestión Comercial I",
				"Fundamentos de la Administración",
				"Contabilidad Básica",
				"Informática aplicada a la gestión administrativa",
			},
			2: {
				"Economía Empresarial",
				"Estadística",
				"Inglés Técnico",
				"Derecho Laboral",
				"Administración de RRHH",
				"Creatividad e Innovación Empresarial",
				"Gestión Contable",
				"Procesos de la Producción Industrial",
			},
			3: {
				"Sistemas de Gestión Integrada de la Calidad",
				"Costos para la toma de decisiones",
				"Derecho Empresarial",
				"Seminario de Negociación",
				"Gestión Comercial II",
				"Impuestos",
				"Proyectos de Inversión",
				"Práctica Profesional Integral",
			},
		},
	},
}
