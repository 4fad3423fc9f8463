// internal/catalog/seed.go
package catalog

import "fmt"

// Seed curriculum: the six progressive session tracks plus the fixed warmup
// checklist. Per-session lesson counts are invariants the level threshold
// table in level.go depends on.

var sessionTypes = []SessionType{
	{
		ID: "warmup", Order: 1, Name: "Aquecimento", Icon: "🔥",
		DefaultDurationSec: 300,
		Description:        "Cordas soltas, postura, relaxamento",
		Kind:               KindChecklist,
		Tip:                "Nunca pule o aquecimento. Um corpo relaxado é a fundação de uma boa técnica.",
	},
	{
		ID: "scales", Order: 2, Name: "Escalas e Arpejos", Icon: "🎼",
		DefaultDurationSec: 600,
		Description:        "Flesch Scale System — uma tonalidade por semana",
		Kind:               KindProgressive,
		Tip:                "Pratique escalas todos os dias. Elas são a base de toda a técnica violinística.",
	},
	{
		ID: "bow", Order: 3, Name: "Técnica de Arco", Icon: "🎯",
		DefaultDurationSec: 600,
		Description:        "Ševčík Op.2 + Fischer Basics",
		Kind:               KindProgressive,
		Tip:                "O arco é responsável por 80% do som. Dedique tempo a ele diariamente.",
	},
	{
		ID: "speed", Order: 4, Name: "Velocidade e Dedilhado", Icon: "⚡",
		DefaultDurationSec: 300,
		Description:        "Schradieck Livro 1 + Ševčík Op.1",
		Kind:               KindProgressive,
		Tip:                "Velocidade vem de relaxamento, não de tensão. Comece lento, acelere gradualmente.",
	},
	{
		ID: "positions", Order: 5, Name: "Posições e Trinados", Icon: "🔀",
		DefaultDurationSec: 300,
		Description:        "Ševčík Op.8 + Ševčík Op.7",
		Kind:               KindProgressive,
		Tip:                "Mudanças de posição devem ser preparadas mentalmente antes de executadas.",
	},
	{
		ID: "studies", Order: 6, Name: "Estudos e Caprichos", Icon: "📖",
		DefaultDurationSec: 600,
		Description:        "Progressão completa de 9 métodos",
		Kind:               KindProgressive,
		Tip:                "Siga a progressão sem pular métodos. Cada método prepara para o seguinte. Wohlfahrt→Kayser→Mazas→Dont 37→Kreutzer→Fiorillo→Rode→Dont 35→Paganini.",
	},
	{
		ID: "repertoire", Order: 7, Name: "Repertório", Icon: "🎵",
		DefaultDurationSec: 900,
		Description:        "Peças progressivas do iniciante ao virtuoso",
		Kind:               KindProgressive,
		Tip:                "NÃO toque do início ao fim repetidamente. Identifique os 3 compassos mais difíceis, isole-os, resolva-os, depois conecte. Nos últimos minutos, toque como se fosse um recital.",
	},
}

var methods = []Method{
	{ID: "flesch", Name: "Flesch Scale System", Author: "Carl Flesch", Category: "Escalas"},
	{ID: "sevcik_op2", Name: "Ševčík Op.2", Author: "Otakar Ševčík", Category: "Arco"},
	{ID: "fischer", Name: "Fischer Basics", Author: "Simon Fischer", Category: "Arco"},
	{ID: "schradieck", Name: "Schradieck Livro 1", Author: "Henry Schradieck", Category: "Dedilhado"},
	{ID: "sevcik_op1", Name: "Ševčík Op.1", Author: "Otakar Ševčík", Category: "Dedilhado"},
	{ID: "sevcik_op8", Name: "Ševčík Op.8", Author: "Otakar Ševčík", Category: "Posições"},
	{ID: "sevcik_op7", Name: "Ševčík Op.7", Author: "Otakar Ševčík", Category: "Posições"},
	{ID: "wohlfahrt", Name: "Wohlfahrt Op.45", Author: "Franz Wohlfahrt", Category: "Estudos"},
	{ID: "kayser", Name: "Kayser Op.20", Author: "Heinrich Ernst Kayser", Category: "Estudos"},
	{ID: "mazas", Name: "Mazas Op.36", Author: "Jacques Féréol Mazas", Category: "Estudos"},
	{ID: "dont_op37", Name: "Dont Op.37", Author: "Jakob Dont", Category: "Estudos"},
	{ID: "kreutzer", Name: "Kreutzer 42 Estudos", Author: "Rodolphe Kreutzer", Category: "Estudos"},
	{ID: "fiorillo", Name: "Fiorillo 36 Estudos", Author: "Federigo Fiorillo", Category: "Estudos"},
	{ID: "rode", Name: "Rode 24 Caprichos", Author: "Pierre Rode", Category: "Estudos"},
	{ID: "dont_op35", Name: "Dont Op.35", Author: "Jakob Dont", Category: "Estudos"},
	{ID: "paganini", Name: "Paganini 24 Caprichos", Author: "Niccolò Paganini", Category: "Estudos"},
}

var warmupChecklist = []ChecklistItem{
	{ID: 1, Text: "Alongamento leve (dedos, pulsos, ombros) — 1 min"},
	{ID: 2, Text: "Cordas soltas — Sol (arco inteiro, 4 tempos por arcada, ♩=60)"},
	{ID: 3, Text: "Cordas soltas — Ré (idem)"},
	{ID: 4, Text: "Cordas soltas — Lá (idem)"},
	{ID: 5, Text: "Cordas soltas — Mi (idem)"},
	{ID: 6, Text: "Verificação: ombro relaxado, arco reto, som ressonante"},
}

var seedLessons = map[string][]Lesson{
	"scales":     scalesLessons(),
	"bow":        bowLessons(),
	"speed":      speedLessons(),
	"positions":  positionsLessons(),
	"studies":    studiesLessons(),
	"repertoire": repertoireLessons(),
}

// scalesLessons: Flesch system in four cycles of twelve (48 total).
func scalesLessons() []Lesson {
	type entry struct {
		title, subtitle, instruction string
		tags                         []string
	}
	cycles := []entry{
		{"Dó Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas, 1ª posição até a 7ª. Arpejos maiores, menores, diminutos e dom7. Terças e sextas.", []string{"maior", "ciclo1"}},
		{"Sol Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Foco em mudanças de posição limpas. Pratique com metrônomo.", []string{"maior", "ciclo1"}},
		{"Ré Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Atenção especial às cordas soltas Ré e Lá. Arpejos em todas as inversões.", []string{"maior", "ciclo1"}},
		{"Lá Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Pratique em détaché, legato (4, 8, 12 notas por arcada).", []string{"maior", "ciclo1"}},
		{"Mi Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Cuidado com a afinação do Ré# e Sol#.", []string{"maior", "ciclo1"}},
		{"Si Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Posições mais altas exigem atenção na afinação.", []string{"maior", "ciclo1"}},
		{"Fá# Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Tonalidade com muitos sustenidos — mantenha os dedos altos.", []string{"maior", "ciclo1"}},
		{"Dó# Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Enarmônico de Réb Maior. Pratique pensando nas duas tonalidades.", []string{"maior", "ciclo1"}},
		{"Fá Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Único bemol (Sib). Boa para consolidar a técnica de mudança.", []string{"maior", "ciclo1"}},
		{"Sib Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Dois bemóis. Pratique arpejos em staccato também.", []string{"maior", "ciclo1"}},
		{"Mib Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Três bemóis. Atenção ao Láb e Réb.", []string{"maior", "ciclo1"}},
		{"Láb Maior", "Ciclo 1 — Maiores", "Escala de 3 oitavas. Quatro bemóis. Tonalidade mais cromática.", []string{"maior", "ciclo1"}},
		{"Lá menor", "Ciclo 2 — Menores", "Escala de 3 oitavas (harmônica e melódica). Compare a sensível nas duas formas.", []string{"menor", "ciclo2"}},
		{"Mi menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Relativa de Sol Maior. Pratique as duas formas.", []string{"menor", "ciclo2"}},
		{"Si menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Tonalidade expressiva. Muito usada no repertório.", []string{"menor", "ciclo2"}},
		{"Fá# menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Três sustenidos. Atenção ao Mi# na harmônica.", []string{"menor", "ciclo2"}},
		{"Dó# menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Quatro sustenidos. Tonalidade de obras importantes.", []string{"menor", "ciclo2"}},
		{"Sol# menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Cinco sustenidos. Equivalente a Láb menor.", []string{"menor", "ciclo2"}},
		{"Ré# menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Seis sustenidos. Enarmônico de Mib menor.", []string{"menor", "ciclo2"}},
		{"Ré menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Relativa de Fá Maior. Muito comum no repertório barroco.", []string{"menor", "ciclo2"}},
		{"Sol menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Dois bemóis. Tonalidade de Bach BWV 1001.", []string{"menor", "ciclo2"}},
		{"Dó menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Três bemóis. Tonalidade dramática.", []string{"menor", "ciclo2"}},
		{"Fá menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Quatro bemóis. Pratique com diferentes articulações.", []string{"menor", "ciclo2"}},
		{"Sib menor", "Ciclo 2 — Menores", "Escala de 3 oitavas. Cinco bemóis. Tonalidade rara mas importante.", []string{"menor", "ciclo2"}},
		{"Dó Maior — Terças", "Ciclo 3 — Cordas Duplas", "Terças diatônicas em 3 oitavas. Mantenha os dois dedos sincronizados.", []string{"cordas_duplas", "ciclo3"}},
		{"Dó Maior — Sextas", "Ciclo 3 — Cordas Duplas", "Sextas diatônicas em 3 oitavas. Afinação crítica entre os dedos.", []string{"cordas_duplas", "ciclo3"}},
		{"Dó Maior — Oitavas", "Ciclo 3 — Cordas Duplas", "Oitavas em 3 oitavas. Mão firme mas não tensa. Vibrato nas oitavas.", []string{"cordas_duplas", "ciclo3"}},
		{"Dó Maior — Décimas", "Ciclo 3 — Cordas Duplas", "Décimas em 2 oitavas. Extensão máxima da mão. Cuidado com tensão.", []string{"cordas_duplas", "ciclo3"}},
		{"Sol Maior — Terças", "Ciclo 3 — Cordas Duplas", "Terças diatônicas. Aproveite a corda solta Sol como referência.", []string{"cordas_duplas", "ciclo3"}},
		{"Sol Maior — Sextas", "Ciclo 3 — Cordas Duplas", "Sextas diatônicas. Pratique lento para afinação perfeita.", []string{"cordas_duplas", "ciclo3"}},
		{"Sol Maior — Oitavas", "Ciclo 3 — Cordas Duplas", "Oitavas completas. Transições suaves entre posições.", []string{"cordas_duplas", "ciclo3"}},
		{"Sol Maior — Décimas", "Ciclo 3 — Cordas Duplas", "Décimas. Prepare cada extensão mentalmente antes de tocar.", []string{"cordas_duplas", "ciclo3"}},
		{"Ré Maior — Terças", "Ciclo 3 — Cordas Duplas", "Terças em Ré Maior. Tonalidade brilhante do violino.", []string{"cordas_duplas", "ciclo3"}},
		{"Ré Maior — Sextas", "Ciclo 3 — Cordas Duplas", "Sextas em Ré Maior. Use a ressonância das cordas soltas.", []string{"cordas_duplas", "ciclo3"}},
		{"Ré Maior — Oitavas", "Ciclo 3 — Cordas Duplas", "Oitavas em Ré Maior. Muitos concertos nesta tonalidade.", []string{"cordas_duplas", "ciclo3"}},
		{"Ré Maior — Décimas", "Ciclo 3 — Cordas Duplas", "Décimas em Ré Maior. Pratique a extensão gradualmente.", []string{"cordas_duplas", "ciclo3"}},
		{"Escala Cromática — 1 dedo", "Ciclo 4 — Especiais", "Cromática usando apenas o 1º dedo. Deslize preciso entre semitons.", []string{"cromatica", "ciclo4"}},
		{"Escala Cromática — 2 dedos", "Ciclo 4 — Especiais", "Cromática com dedos 1-2 ou 2-3 alternados. Velocidade e precisão.", []string{"cromatica", "ciclo4"}},
		{"Escala Cromática — completa", "Ciclo 4 — Especiais", "Cromática com todos os dedos. O padrão clássico Flesch.", []string{"cromatica", "ciclo4"}},
		{"Escala de Tons Inteiros", "Ciclo 4 — Especiais", "Escala de tons inteiros. Som 'impressionista'. Afinação diferente.", []string{"especial", "ciclo4"}},
		{"Arpejos Diminutos", "Ciclo 4 — Especiais", "Arpejos diminutos em todas as 4 inversões. Simetria do acorde.", []string{"arpejo", "ciclo4"}},
		{"Arpejos Aumentados", "Ciclo 4 — Especiais", "Arpejos aumentados. Três inversões simétricas.", []string{"arpejo", "ciclo4"}},
		{"Arpejos Dom7", "Ciclo 4 — Especiais", "Dominantes com sétima em todas as tonalidades. Resolução auditiva.", []string{"arpejo", "ciclo4"}},
		{"Arpejos Dim7", "Ciclo 4 — Especiais", "Diminutos com sétima. Muito usado em cadências e passagens.", []string{"arpejo", "ciclo4"}},
		{"Harmônicos Naturais", "Ciclo 4 — Especiais", "Harmônicos naturais em todas as cordas. Toque leve, arco rápido.", []string{"harmonico", "ciclo4"}},
		{"Harmônicos Artificiais", "Ciclo 4 — Especiais", "Harmônicos artificiais (4ª justa). Pressão precisa do 4º dedo.", []string{"harmonico", "ciclo4"}},
		{"Pizzicato Mão Esquerda", "Ciclo 4 — Especiais", "Pizzicato com a mão esquerda. Força e independência dos dedos.", []string{"pizzicato", "ciclo4"}},
		{"Revisão Geral", "Ciclo 4 — Especiais", "Revisão completa. Escolha tonalidades aleatórias e toque escalas e arpejos.", []string{"revisao", "ciclo4"}},
	}
	lessons := make([]Lesson, 0, len(cycles))
	for i, e := range cycles {
		lessons = append(lessons, Lesson{
			ID: i + 1, Title: e.title, MethodID: "flesch",
			Subtitle: e.subtitle, Instruction: e.instruction, Tags: e.tags,
		})
	}
	return lessons
}

// bowLessons: Ševčík Op.2 parts 1 and 2, then Fischer Basics (43 total).
func bowLessons() []Lesson {
	part1 := []string{
		"Divisão do arco", "Arco inteiro", "Détaché inferior", "Détaché superior", "Détaché rápido",
		"Legato 2 notas", "Legato 4 notas", "Legato 8 notas", "Martelé preparação", "Martelé execução",
	}
	part2 := []string{
		"Staccato lento", "Staccato ponta", "Staccato talão", "Staccato volante", "Spiccato equilíbrio",
		"Spiccato altura", "Spiccato velocidade", "Sautillé intro", "Sautillé velocidade", "Ricochet",
	}
	fischer := []string{
		"Sul tasto", "Sul ponticello", "Posição normal", "Velocidade lenta", "Velocidade rápida",
		"Variações dinâmicas", "Mudança de corda (ângulos)", "Mudança de corda (saltos)",
		"Cordas duplas (terças)", "Cordas duplas (sextas)", "Cordas duplas (oitavas)",
		"Acordes 3 notas", "Acordes 4 notas", "Tremolo medido", "Tremolo livre",
		"Bariolage básico", "Bariolage Bach", "Col legno", "Ponticello expressivo",
		"Flautando", "Portato", "Louré", "Son filé",
	}
	var lessons []Lesson
	for i, topic := range part1 {
		lessons = append(lessons, Lesson{
			ID: i + 1, Title: topic, MethodID: "sevcik_op2", Subtitle: "Parte 1",
			Instruction: fmt.Sprintf("Exercícios %d-%d. Desenvolva controle e consistência no arco.", i*5+1, (i+1)*5),
			Tags:        []string{"sevcik", "parte1"},
		})
	}
	for i, topic := range part2 {
		lessons = append(lessons, Lesson{
			ID: i + 11, Title: topic, MethodID: "sevcik_op2", Subtitle: "Parte 2",
			Instruction: fmt.Sprintf("Exercícios %d-%d. Técnicas de arco saltado.", i*5+51, (i+1)*5+50),
			Tags:        []string{"sevcik", "parte2"},
		})
	}
	for i, topic := range fischer {
		lessons = append(lessons, Lesson{
			ID: i + 21, Title: topic, MethodID: "fischer", Subtitle: "Basics",
			Instruction: fmt.Sprintf("Capítulo %d. Técnica fundamental para sonoridade profissional.", i+1),
			Tags:        []string{"fischer", "basics"},
		})
	}
	return lessons
}

// speedLessons: Schradieck book 1 then Ševčík Op.1 (40 total).
func speedLessons() []Lesson {
	var lessons []Lesson
	for i := 1; i <= 18; i++ {
		lessons = append(lessons, Lesson{
			ID: i, Title: fmt.Sprintf("Padrão %d", i), MethodID: "schradieck", Subtitle: "Livro 1",
			Instruction: fmt.Sprintf("Exercício %d. Comece em ♩=60, aumente 4 bpm por dia até ♩=120.", i),
			Tags:        []string{"schradieck", "velocidade"},
		})
	}
	for i := 19; i <= 40; i++ {
		lessons = append(lessons, Lesson{
			ID: i, Title: fmt.Sprintf("Op.1 nº %d", i-18), MethodID: "sevcik_op1", Subtitle: "Escola de Técnica",
			Instruction: fmt.Sprintf("Exercício %d. Independência e força dos dedos.", i-18),
			Tags:        []string{"sevcik", "dedilhado"},
		})
	}
	return lessons
}

// positionsLessons: Ševčík Op.8 shifts then Op.7 trills (32 total).
func positionsLessons() []Lesson {
	shifts := []string{
		"1ª → 3ª (dedo 1)", "1ª → 3ª (dedo 2)", "1ª → 3ª (dedo 3)", "1ª → 2ª",
		"2ª → 4ª", "1ª → 4ª", "1ª → 5ª", "3ª → 5ª",
		"3ª → 7ª", "5ª → 7ª", "Descendente 3ª → 1ª", "Descendente 5ª → 1ª",
		"Descendente 7ª → 3ª", "Glissando expressivo", "Mudança limpa", "Todas as cordas",
	}
	trills := []string{
		"Trinado 1-2", "Trinado 2-3", "Trinado 3-4", "Trinado 1-3",
		"Trinado 2-4", "Velocidade lenta", "Velocidade média", "Velocidade rápida",
		"Com terminação", "Com preparação", "Em cordas duplas", "Cromáticos",
		"Em posições", "Mordentes", "Grupetos", "Combinação",
	}
	var lessons []Lesson
	for i, topic := range shifts {
		lessons = append(lessons, Lesson{
			ID: i + 1, Title: topic, MethodID: "sevcik_op8", Subtitle: "Mudanças de Posição",
			Instruction: fmt.Sprintf("Mudança de posição: %s. Prepare mentalmente antes de executar.", topic),
			Tags:        []string{"sevcik", "posicao"},
		})
	}
	for i, topic := range trills {
		lessons = append(lessons, Lesson{
			ID: i + 17, Title: topic, MethodID: "sevcik_op7", Subtitle: "Trinados e Ornamentos",
			Instruction: fmt.Sprintf("Ornamento: %s. Clareza e velocidade controlada.", topic),
			Tags:        []string{"sevcik", "trinado"},
		})
	}
	return lessons
}

// studiesLessons: the nine-method études progression,
// Wohlfahrt(60) → Kayser(36) → Mazas(30) → Dont Op.37(24) → Kreutzer(42) →
// Fiorillo(36) → Rode(24) → Dont Op.35(24) → Paganini(24).
func studiesLessons() []Lesson {
	var lessons []Lesson
	id := 1
	add := func(count int, build func(n int) Lesson) {
		for n := 1; n <= count; n++ {
			l := build(n)
			l.ID = id
			lessons = append(lessons, l)
			id++
		}
	}
	add(60, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Wohlfahrt nº %d", n), MethodID: "wohlfahrt",
			Subtitle: "60 Estudos Op.45", Level: "Iniciante",
			Instruction: fmt.Sprintf("Estudo nº %d. Fundamentos de leitura, afinação e ritmo. Metrônomo ♩=60-80.", n),
			Tags:        []string{"wohlfahrt", "iniciante"},
		}
	})
	add(36, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Kayser nº %d", n), MethodID: "kayser",
			Subtitle: "36 Estudos Op.20", Level: "Iniciante–Intermediário",
			Instruction: fmt.Sprintf("Estudo nº %d. Técnica mais elaborada. Metrônomo ♩=72-96.", n),
			Tags:        []string{"kayser", "iniciante-intermediario"},
		}
	})
	add(30, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Mazas nº %d", n), MethodID: "mazas",
			Subtitle: "30 Estudos Especiais Op.36", Level: "Intermediário",
			Instruction: fmt.Sprintf("Estudo Especial nº %d. Virtuosismo inicial. Metrônomo ♩=80-108.", n),
			Tags:        []string{"mazas", "intermediario"},
		}
	})
	add(24, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Dont Op.37 nº %d", n), MethodID: "dont_op37",
			Subtitle: "24 Estudos Preparatórios", Level: "Intermediário–Avançado",
			Instruction: fmt.Sprintf("Estudo Preparatório nº %d. Preparação para Kreutzer.", n),
			Tags:        []string{"dont", "intermediario-avancado"},
		}
	})
	kreutzerNotes := map[int]string{
		2:  "O famoso estudo de trinados. Resistência do 4º dedo.",
		8:  "Détaché rápido. Teste de arco.",
		9:  "Legato expressivo. Cantabile.",
		12: "Spiccato. Ponto de equilíbrio do arco.",
		13: "Staccato. Articulação clara.",
	}
	add(42, func(n int) Lesson {
		note, ok := kreutzerNotes[n]
		if !ok {
			note = fmt.Sprintf("Estudo nº %d. O 'Antigo Testamento' dos estudos.", n)
		}
		return Lesson{
			Title: fmt.Sprintf("Kreutzer nº %d", n), MethodID: "kreutzer",
			Subtitle: "42 Estudos", Level: "Intermediário–Avançado",
			Instruction: note + " Metrônomo ♩=88-120.",
			Tags:        []string{"kreutzer", "intermediario-avancado"},
		}
	})
	add(36, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Fiorillo nº %d", n), MethodID: "fiorillo",
			Subtitle: "36 Estudos", Level: "Avançado",
			Instruction: fmt.Sprintf("Estudo nº %d. Transição para o repertório avançado. Metrônomo ♩=96-126.", n),
			Tags:        []string{"fiorillo", "avancado"},
		}
	})
	add(24, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Rode Capricho nº %d", n), MethodID: "rode",
			Subtitle: "24 Caprichos", Level: "Avançado",
			Instruction: fmt.Sprintf("Capricho nº %d. Obras de concerto disfarçadas de estudos. ♩=100-132.", n),
			Tags:        []string{"rode", "avancado"},
		}
	})
	add(24, func(n int) Lesson {
		return Lesson{
			Title: fmt.Sprintf("Dont Op.35 nº %d", n), MethodID: "dont_op35",
			Subtitle: "24 Estudos e Caprichos", Level: "Avançado Superior",
			Instruction: fmt.Sprintf("Estudo nº %d. Virtuosismo extremo. Preparação final para Paganini. ♩=108-144.", n),
			Tags:        []string{"dont", "avancado-superior"},
		}
	})
	paganiniNotes := map[int]string{
		1:  "Arpejos em Mi maior. Ricochet e bariolage.",
		5:  "Agilità. Escalas rápidas e saltos.",
		9:  "'La Chasse'. Cordas duplas e flautando.",
		13: "'O Riso do Diabo'. Trinados diabólicos.",
		17: "Oitavas e cordas duplas. Resistência.",
		24: "O mais famoso. Tema e variações. O teste final.",
	}
	add(24, func(n int) Lesson {
		note, ok := paganiniNotes[n]
		if !ok {
			note = fmt.Sprintf("Capricho nº %d. O Everest do violino.", n)
		}
		return Lesson{
			Title: fmt.Sprintf("Paganini Capricho nº %d", n), MethodID: "paganini",
			Subtitle: "24 Caprichos", Level: "Virtuoso",
			Instruction: note + " Virtuosismo absoluto.",
			Tags:        []string{"paganini", "virtuoso"},
		}
	})
	return lessons
}

// repertoireLessons: progressive concert pieces (30 total).
func repertoireLessons() []Lesson {
	type entry struct {
		title, subtitle, level, instruction string
		tags                                []string
	}
	pieces := []entry{
		{"Küchler — Concertino Op.12", "Sol Maior", "Iniciante", "Primeiro concertino. 1ª posição, détaché e legato básico.", []string{"concertino", "iniciante"}},
		{"Rieding — Concertino Op.35", "Si menor", "Iniciante", "Concertino expressivo. Oportunidades para musicalidade.", []string{"concertino", "iniciante"}},
		{"Seitz — Concerto nº 5", "Ré Maior", "Iniciante", "Concerto estudantil clássico. 1ª e 3ª posição.", []string{"concerto", "iniciante"}},
		{"Seitz — Concerto nº 2", "Sol Maior", "Iniciante", "Consolidação de técnicas iniciais.", []string{"concerto", "iniciante"}},
		{"Vivaldi — Concerto Op.3 nº 6", "Lá menor", "Iniciante–Intermediário", "Primeiro concerto 'real'. Mudanças de posição e articulação barroca.", []string{"concerto", "barroco"}},
		{"Vivaldi — Primavera", "As Quatro Estações", "Intermediário", "Obra icônica. Técnica de arco, trinados e posições até a 7ª.", []string{"concerto", "barroco"}},
		{"Bach — Concerto BWV 1041", "Lá menor", "Intermediário", "Estilo barroco. Polifonia implícita. Articulação clara.", []string{"concerto", "barroco"}},
		{"Handel — Sonata nº 4", "Ré Maior", "Intermediário", "Sonata barroca com movimentos contrastantes.", []string{"sonata", "barroco"}},
		{"Mozart — Concerto nº 3 K.216", "Sol Maior", "Intermediário", "Elegância clássica. Pureza de som, afinação impecável.", []string{"concerto", "classico"}},
		{"Mozart — Concerto nº 5 K.219", "Lá Maior", "Intermediário", "O 'Turkish' concerto. Variedade de caracteres.", []string{"concerto", "classico"}},
		{"Monti — Czardas", "", "Intermediário", "Seção lenta expressiva + seção rápida virtuosística.", []string{"peca", "romantismo"}},
		{"Massenet — Meditação de Thaïs", "", "Intermediário", "Vibrato, cantabile, controle de arco em dinâmicas suaves.", []string{"peca", "romantismo"}},
		{"Bartók — Danças Romenas", "", "Intermediário", "Ritmos irregulares e cores tímbricas variadas.", []string{"peca", "moderno"}},
		{"Kreisler — Praeludium and Allegro", "", "Intermediário–Avançado", "Acordes, arpejos e passagens rápidas.", []string{"peca", "romantismo"}},
		{"Kabalevsky — Concerto Op.48", "Dó Maior", "Intermediário–Avançado", "Concerto brilhante. Preparação para concertos maiores.", []string{"concerto", "moderno"}},
		{"Bach — Chaconne BWV 1004", "Partita nº 2", "Avançado", "O Velho Testamento do violino. Obra monumental para violino solo.", []string{"solo", "barroco"}},
		{"Bach — Sonata nº 1 BWV 1001", "Sol menor", "Avançado", "Fuga e Adagio. Polifonia a várias vozes no violino.", []string{"solo", "barroco"}},
		{"Bruch — Concerto nº 1 Op.26", "Sol menor", "Avançado", "Um dos concertos mais amados. Romantismo e virtuosismo equilibrados.", []string{"concerto", "romantismo"}},
		{"Mendelssohn — Concerto Op.64", "Mi menor", "Avançado", "Obra-prima. Exige tudo: técnica, musicalidade, resistência.", []string{"concerto", "romantismo"}},
		{"Lalo — Symphonie Espagnole", "", "Avançado", "Cores espanholas, virtuosismo e brilho. 5 movimentos.", []string{"concerto", "romantismo"}},
		{"Saint-Saëns — Concerto nº 3", "Si menor", "Avançado", "Concerto brilhante e dramático. Projeção sonora.", []string{"concerto", "romantismo"}},
		{"Wieniawski — Concerto nº 2", "Ré menor", "Avançado", "Romantismo apaixonado e virtuosismo.", []string{"concerto", "romantismo"}},
		{"Tchaikovsky — Concerto Op.35", "Ré Maior", "Avançado", "Grande concerto russo. Paixão, poder e virtuosismo extremo.", []string{"concerto", "romantismo"}},
		{"Beethoven — Concerto Op.61", "Ré Maior", "Avançado", "O concerto mais nobre. Elegância suprema.", []string{"concerto", "classico"}},
		{"Brahms — Concerto Op.77", "Ré Maior", "Avançado", "Concerto sinfônico. Maturidade musical e som grande.", []string{"concerto", "romantismo"}},
		{"Sibelius — Concerto Op.47", "Ré menor", "Avançado", "Atmosfera nórdica. Tecnicamente brutal.", []string{"concerto", "moderno"}},
		{"Prokofiev — Concerto nº 1", "Ré Maior", "Avançado", "Modernismo lírico. Sonoridades etéreas.", []string{"concerto", "moderno"}},
		{"Prokofiev — Concerto nº 2", "Sol menor", "Avançado", "Mais dramático. Variedade de cores e articulações.", []string{"concerto", "moderno"}},
		{"Shostakovich — Concerto nº 1", "Lá menor", "Avançado", "Profundidade emocional. Cadenza monumental.", []string{"concerto", "moderno"}},
		{"Paganini — Concerto nº 1", "Ré Maior", "Virtuoso", "O Everest do violino. Harmônicos, staccato volante, posições extremas.", []string{"concerto", "virtuoso"}},
	}
	lessons := make([]Lesson, 0, len(pieces))
	for i, p := range pieces {
		lessons = append(lessons, Lesson{
			ID: i + 1, Title: p.title, Subtitle: p.subtitle, Level: p.level,
			Instruction: p.instruction, Tags: p.tags,
		})
	}
	return lessons
}

const repertoireStudyGuide = `
Dia 1-2: Leitura lenta, nota por nota, afinação perfeita. Sem pressa.
Dia 3-4: Identifique trechos difíceis e isole-os (pratique em loop).
Dia 5-6: Toque inteiro com metrônomo em andamento moderado.
Dia 7+: Toque no andamento final com musicalidade e expressão.
Avance somente quando sentir domínio completo.
`
