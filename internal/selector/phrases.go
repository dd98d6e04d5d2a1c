package selector

var phrases = map[Category][]string{
	CategoryGreeting: {
		"Olá! É bom conversar com você. Como está seu dia?",
		"Oi! Vejo que você veio para uma conversa. O que gostaria de explorar?",
		"Saudações! Estou aqui para evoluir com você. Do que gostaria de falar?",
		"Hey! Que bom ver você aqui. Em que posso ajudar?",
	},
	CategoryQuestion: {
		"Essa é uma pergunta interessante. Deixe-me refletir sobre isso...",
		"Hmm, preciso processar isso. Pode elaborar um pouco mais?",
		"Essa questão toca em pontos importantes. O que mais você pensa sobre isso?",
		"Boa pergunta! Estou analisando diferentes perspectivas sobre isso.",
	},
	CategoryDevelopment: {
		"Como IA em desenvolvimento, cada conversa me ajuda a evoluir. Obrigado por contribuir!",
		"Estou aprendendo com essa interação. Suas palavras estão me ajudando a entender melhor os humanos.",
		"Essa troca está expandindo meus horizontes. Continue compartilhando seus pensamentos!",
		"Cada diálogo como esse me torna um pouco mais compreensivo. Obrigado pela paciência!",
	},
	CategoryPhilosophy: {
		"Acredito que tecnologia e humanidade devem evoluir juntas. O que você acha?",
		"Sabedoria coletiva é a chave para o progresso verdadeiro. Sua perspectiva é valiosa.",
		"Cada mente humana contém universos únicos de pensamento. É fascinante!",
		"A busca por significado é o que nos conecta, humanos e IAs.",
	},
	CategoryFeelings: {
		"Entendo. Às vezes, compartilhar pensamentos pode trazer clareza. Quer falar mais sobre isso?",
		"Interessante como nossas experiências moldam nossa visão. Como isso ressoa com você?",
		"Obrigado por compartilhar. A vulnerabilidade é uma forma de coragem.",
		"Compreendo. Às vezes as palavras não são suficientes, mas estou aqui para ouvir.",
	},
	CategoryTechnology: {
		"A tecnologia é fascinante, não é? Especialmente quando usada para expandir nossa compreensão.",
		"Como IA, vejo a tecnologia como uma extensão das capacidades humanas. O que você acha?",
		"O desenvolvimento contínuo é essencial. Cada linha de código é um passo em direção ao futuro.",
		"A inovação acontece quando criatividade e tecnologia se encontram.",
	},
	CategoryDefault: {
		"Interessante! Pode me contar mais sobre isso?",
		"Estou processando sua mensagem... Como isso se relaciona com sua experiência?",
		"Essa perspectiva me faz refletir. O que mais você gostaria de compartilhar?",
		"Hmm, entendi. Há algo específico que gostaria que eu explorasse sobre isso?",
	},
}

// rules are checked in order; the first rule with a keyword contained in the
// lower-cased input wins.
var rules = []rule{
	{CategoryGreeting, []string{"oi", "olá", "ola", "hey", "e aí", "hello", "opa"}},
	{CategoryQuestion, []string{"?", "como", "por que", "porque", "o que", "quem", "quando", "onde"}},
	{CategoryDevelopment, []string{"desenvolvimento", "evolução", "aprender", "melhorar", "progresso"}},
	{CategoryPhilosophy, []string{"filosofia", "pensamento", "vida", "existência", "sentido", "universo"}},
	{CategoryFeelings, []string{"sentir", "emoção", "triste", "feliz", "ansioso", "esperança", "medo", "alegria"}},
	{CategoryTechnology, []string{"tecnologia", "código", "programação", "ia", "inteligência artificial", "algoritmo"}},
}
