package onboarding

// Storage keys written by the wizard screens and the account commands.
const (
	KeySex        = "sexo"
	KeyAge        = "idade"
	KeyWeight     = "peso"
	KeyWeightUnit = "unidade_peso"
	KeyHeight     = "altura"
	KeyHeightUnit = "unidade_altura"
	KeyGoal       = "objetivo"
	KeyFrequency  = "frequencia_treino"
	KeyWater      = "agua"
	KeyNeck       = "pescoco"
	KeyWaist      = "cintura"
	KeyHip        = "quadril"

	KeyToken     = "token"
	KeyUserEmail = "usuario_email"
	KeyUserName  = "usuario_nome"
)

const (
	SexMale   = "masculino"
	SexFemale = "feminino"

	GoalLose     = "perder"
	GoalMaintain = "manter"
	GoalGain     = "ganhar"

	UnitKg = "kg"
	UnitLb = "lb"
	UnitCm = "cm"
	UnitFt = "ft"

	WaterAuto = "auto"
)

// ProfileKeys lists every key that belongs to the questionnaire, in screen order.
var ProfileKeys = []string{
	KeySex, KeyAge, KeyWeight, KeyWeightUnit, KeyHeight, KeyHeightUnit,
	KeyGoal, KeyFrequency, KeyWater, KeyNeck, KeyWaist, KeyHip,
}
