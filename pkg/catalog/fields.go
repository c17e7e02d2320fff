package catalog

// Image attachment slots. Only the range-priced schemes carry a screenshot.
const (
	SlotPayout = "payout"
	SlotPayin  = "payin"
)

var clientFields = []Field{
	{Key: "empresa", Kind: KindText, Label: "Nombre empresa", Placeholder: "Ej. Empresa S.A.S.", Required: true},
	{Key: "fechaPago", Kind: KindText, Label: "Fecha pago setup fee", Placeholder: "dd/mm/aa", Required: true},
	{Key: "contacto", Kind: KindText, Label: "Contacto principal", Placeholder: "Nombre, email, teléfono"},
	{Key: "emailFacturacion", Kind: KindText, Label: "Correo para facturación", Placeholder: "facturacion@empresa.com"},
	{Key: "facturacion", Kind: KindChoice, Label: "Facturación", Options: []Choice{
		{Value: "COP", Label: "COP"},
		{Value: "USD", Label: "USD"},
	}},
	{Key: "segmento", Kind: KindChoice, Label: "Segmento", Options: []Choice{
		{Value: "mid", Label: "Mid-market"},
		{Value: "ent", Label: "Enterprise"},
	}},
	{Key: "razonSocial", Kind: KindText, Label: "Razón Social", Group: "Datos entidad legal"},
	{Key: "nit", Kind: KindText, Label: "NIT", Group: "Datos entidad legal"},
	{Key: "jurisdiccion", Kind: KindText, Label: "Jurisdicción", Group: "Datos entidad legal"},
	{Key: "direccion", Kind: KindText, Label: "Dirección, Ciudad", Group: "Datos entidad legal"},
	{Key: "repLegal", Kind: KindText, Label: "Nombre representante legal", Group: "Datos entidad legal"},
	{Key: "docRepLegal", Kind: KindText, Label: "Documento representante legal", Group: "Datos entidad legal"},
}

var contextFields = []Field{
	{Key: "descripcion", Kind: KindMultiline, Label: "Descripción del cliente", Placeholder: "Qué hace el cliente, quiénes son...", Required: true},
	{Key: "volumen", Kind: KindMultiline, Label: "Volumen transaccional", Placeholder: "Número de transacciones, ticket promedio, usuarios proyectados...", Required: true},
	{Key: "casoUso", Kind: KindMultiline, Label: "Caso de uso", Placeholder: "Para qué va a usar Mono...", Required: true},
}

var noteFields = []Field{
	{Key: "notas", Kind: KindMultiline, Label: "Condiciones especiales y descuentos", Placeholder: "Descuentos, inicio del cobro de la mensualidad, mínimo facturable, cualquier información adicional..."},
	{Key: "completadoPor", Kind: KindText, Label: "Completado por", Placeholder: "Nombre del vendedor", Required: true},
	{Key: "fechaCompletado", Kind: KindText, Label: "Fecha", Placeholder: "dd/mm/aaaa"},
}

var products = []Product{
	{
		Name: ProductCuenta,
		Fields: []Field{
			{Key: "cuentaModelo", Kind: KindChoice, Label: "Modelo de operación", Options: []Choice{
				{Value: "Habilitador", Label: "Habilitador"},
				{Value: "Agregador", Label: "Agregador"},
			}},
			{Key: "cuentaTipo", Kind: KindChoice, Label: "Tipo de cuenta", Options: []Choice{
				{Value: "Cuenta del cliente en BCC", Label: "Cuenta del cliente en BCC"},
				{Value: "Cuenta del cliente en Bancoomeva", Label: "Cuenta del cliente en Bancoomeva"},
				{Value: "Cuenta de Mono en BCC", Label: "Cuenta de Mono en BCC"},
				{Value: "Cuenta de Mono en Bancoomeva", Label: "Cuenta de Mono en Bancoomeva"},
				{Value: "Cuenta de Mono en Global66 (USD)", Label: "Cuenta de Mono en Global66 (USD)"},
			}},
			{Key: "cuentaAV", Kind: KindFlag, Label: "Acciones y Valores", Group: "Adicionales"},
			{Key: "cuentaGMF", Kind: KindFlag, Label: "Exención GMF", Group: "Adicionales"},
			{Key: "cuentaH2H", Kind: KindFlag, Label: "Requiere H2H (solo BCC)", Group: "Adicionales"},
			{Key: "cuentaGMFNumerales", Kind: KindText, Label: "Numerales exención GMF", Placeholder: "Listar numerales...", Rule: "cuentaGMF"},
		},
	},
	{
		Name: ProductCore,
		Fields: []Field{
			{Key: "corePlan", Kind: KindChoice, Label: "Plan", Options: []Choice{
				{Value: "Lite", Label: "Lite"},
				{Value: "Basic", Label: "Basic"},
				{Value: "Premium", Label: "Premium"},
			}},
			{Key: "coreFondeoCOP", Kind: KindFlag, Label: "COP", Group: "Fondeo en"},
			{Key: "coreFondeoUSD", Kind: KindFlag, Label: "USD", Group: "Fondeo en"},
			{Key: "coreMonedaCOP", Kind: KindFlag, Label: "COP", Group: "Monedas a soportar"},
			{Key: "coreMonedaUSD", Kind: KindFlag, Label: "USD", Group: "Monedas a soportar"},
			{Key: "coreMonedaOtras", Kind: KindText, Label: "Otras monedas", Group: "Monedas a soportar", Placeholder: "Otras..."},
			{Key: "coreSetup", Kind: KindText, Label: "Setup fee (+ IVA)", Placeholder: "$0.00"},
			{Key: "coreMensualidad", Kind: KindText, Label: "Mensualidad (+ IVA)", Placeholder: "$0.00"},
			{Key: "coreMarkup", Kind: KindChoice, Label: "Configuración del markup", Options: []Choice{
				{Value: "Solo compras internacionales", Label: "Solo compras internacionales"},
				{Value: "Solo compras locales", Label: "Solo compras locales"},
				{Value: "Compras locales e internacionales", Label: "Compras locales e internacionales"},
			}},
		},
	},
	{
		Name: ProductTarjetas,
		Fields: []Field{
			{Key: "tarjFisicas", Kind: KindFlag, Label: "Físicas", Group: "Tipo de tarjetas"},
			{Key: "tarjVirtuales", Kind: KindFlag, Label: "Virtuales", Group: "Tipo de tarjetas"},
			{Key: "tarjToken", Kind: KindFlag, Label: "Tokenización", Group: "Tipo de tarjetas"},
			{Key: "tarjFisicasCant", Kind: KindText, Label: "Tarjetas a emitir", Placeholder: "Tarjetas a emitir", Rule: "tarjFisicas"},
			{Key: "tarjPlastico", Kind: KindText, Label: "Valor del plástico", Placeholder: "Valor del plástico", Rule: "tarjFisicas"},
			{Key: "tarjTokenMens", Kind: KindText, Label: "Tokenización mensualidad", Placeholder: "Mensualidad + IVA", Rule: "tarjToken"},
			{Key: "tarjGPay", Kind: KindFlag, Label: "Google Pay", Group: "Tokenización", Rule: "tarjToken"},
			{Key: "tarjAPay", Kind: KindFlag, Label: "Apple Pay", Group: "Tokenización", Rule: "tarjToken"},
			{Key: "tarjMax", Kind: KindText, Label: "Número máx. tarjetas por usuario", Placeholder: "Ej. 5"},
		},
	},
	{
		Name: ProductPayouts,
		Fields: []Field{
			{Key: "payoutACH", Kind: KindFlag, Label: "ACH", Group: "Rieles de transferencia"},
			{Key: "payoutTransfiya", Kind: KindFlag, Label: "Transfiya / Turbo", Group: "Rieles de transferencia"},
			{Key: "payoutBreB", Kind: KindFlag, Label: "Bre-B", Group: "Rieles de transferencia"},
			{Key: "payoutEsquema", Kind: KindChoice, Label: "Esquema de costos", Options: []Choice{
				{Value: "Fijo por transferencia", Label: "Fijo por transferencia"},
				{Value: "Por rango", Label: "Por rango"},
				{Value: "Otro", Label: "Otro"},
			}},
			{Key: "payoutCostoACH", Kind: KindText, Label: "Costo ACH", Placeholder: "ACH: $ + IVA", Rule: `payoutACH && payoutEsquema == "Fijo por transferencia"`},
			{Key: "payoutCostoBreB", Kind: KindText, Label: "Costo Bre-B", Placeholder: "Bre-B: $ + IVA", Rule: `payoutBreB && payoutEsquema == "Fijo por transferencia"`},
			{Key: "payoutEsquemaOtro", Kind: KindMultiline, Label: "Si otro, detallar", Placeholder: "Describe el esquema de costos...", Rule: `payoutEsquema == "Otro"`},
			{Key: "payoutImg", Kind: KindImage, Label: "Screenshot pricing por rango", Slot: SlotPayout, Rule: `payoutEsquema == "Por rango"`},
			{Key: "payoutValidLlave", Kind: KindChoice, Label: "Validación de llave", Rule: "payoutBreB", Options: []Choice{
				{Value: "si", Label: "Sí"},
				{Value: "no", Label: "No"},
			}},
			{Key: "payoutCostoValidLlave", Kind: KindText, Label: "Costo validación de llave", Placeholder: "Costo validación de llave: $ + IVA", Rule: `payoutBreB && payoutValidLlave == "si"`},
			{Key: "payoutSetup", Kind: KindText, Label: "Setup fee (+ IVA)", Placeholder: "$0.00"},
			{Key: "payoutMin", Kind: KindText, Label: "Mínimo facturable mensual", Placeholder: "$0.00"},
		},
	},
	{
		Name: ProductPayins,
		Fields: []Field{
			{Key: "payinPSE", Kind: KindFlag, Label: "PSE de Mono", Group: "Métodos de recaudo"},
			{Key: "payinAdq", Kind: KindFlag, Label: "Servicio de adquirencia", Group: "Métodos de recaudo"},
			{Key: "payinBreB", Kind: KindFlag, Label: "Bre-B Collections", Group: "Métodos de recaudo"},
			{Key: "payinCodigo", Kind: KindFlag, Label: "Gestión Código Recaudo banco", Group: "Métodos de recaudo"},
			{Key: "payinCostoPSE", Kind: KindText, Label: "Costo PSE", Placeholder: "Costo PSE: $ + IVA", Rule: "payinPSE"},
			{Key: "payinCostoAdq", Kind: KindText, Label: "Costo adquirencia", Placeholder: "Costo adquirencia: $ + IVA", Rule: "payinAdq"},
			{Key: "payinBreBPlan", Kind: KindChoice, Label: "Plan Bre-B Collections", Rule: "payinBreB", Options: []Choice{
				{Value: "Plan Full", Label: "Plan Full"},
				{Value: "Plan Basic", Label: "Plan Basic"},
				{Value: "Otro", Label: "Otro"},
			}},
			{Key: "payinQR", Kind: KindFlag, Label: "Generación QR", Group: "Add-ons", Rule: `payinBreB && payinBreBPlan == "Plan Basic"`},
			{Key: "payin2Reglas", Kind: KindFlag, Label: "Hasta 2 reglas de validación", Group: "Add-ons", Rule: `payinBreB && payinBreBPlan == "Plan Basic"`},
			{Key: "payin4Reglas", Kind: KindFlag, Label: "Hasta 4 reglas de validación", Group: "Add-ons", Rule: `payinBreB && payinBreBPlan == "Plan Basic"`},
			{Key: "payinEsquema", Kind: KindChoice, Label: "Esquema de costos Bre-B", Rule: "payinBreB", Options: []Choice{
				{Value: "Fijo por intento", Label: "Fijo por intento"},
				{Value: "Por rango", Label: "Por rango"},
				{Value: "Otro", Label: "Otro"},
			}},
			{Key: "payinEsquemaOtro", Kind: KindMultiline, Label: "Si otro, detallar", Placeholder: "Describe el esquema de costos...", Rule: `payinBreB && payinEsquema == "Otro"`},
			{Key: "payinImg", Kind: KindImage, Label: "Screenshot pricing por rango", Slot: SlotPayin, Rule: `payinBreB && payinEsquema == "Por rango"`},
			{Key: "payinCostoIntento", Kind: KindText, Label: "Costo por intento (+ IVA)", Placeholder: "$0.00", Rule: `payinBreB && payinEsquema == "Fijo por intento"`},
			{Key: "payinSetup", Kind: KindText, Label: "Setup fee (+ IVA)", Placeholder: "$0.00"},
			{Key: "payinMin", Kind: KindText, Label: "Mínimo facturable mensual", Placeholder: "$0.00", Rule: "payinBreB"},
		},
	},
	{
		Name: ProductWallet,
		Fields: []Field{
			{Key: "walletTransf", Kind: KindFlag, Label: "Transferencias entre wallets", Group: "Funcionalidades"},
			{Key: "walletACH", Kind: KindFlag, Label: "Transferencia ACH", Group: "Funcionalidades"},
			{Key: "walletTransfiya", Kind: KindFlag, Label: "Transfiya / Turbo", Group: "Funcionalidades"},
			{Key: "walletTarjetas", Kind: KindFlag, Label: "Activación tarjetas físicas", Group: "Funcionalidades"},
			{Key: "walletSolicitud", Kind: KindFlag, Label: "Solicitud tarjeta por usuario final", Group: "Funcionalidades"},
			{Key: "walletCostoTransf", Kind: KindText, Label: "Costo transferencia a cuenta banco (+ IVA)", Placeholder: "$0.00"},
			{Key: "walletGMF", Kind: KindChoice, Label: "GMF lo asume", Options: []Choice{
				{Value: "cliente", Label: "Cliente / Tenant"},
				{Value: "usuario", Label: "Usuario Final"},
			}},
			{Key: "walletA2A", Kind: KindChoice, Label: "¿Incluye A2A FX?", Options: []Choice{
				{Value: "si", Label: "Sí"},
				{Value: "no", Label: "No"},
			}},
			{Key: "walletComision", Kind: KindText, Label: "Comisión sobre tasa de cambio (%)", Placeholder: "Ej. 1.5%", Rule: `walletA2A == "si"`},
			{Key: "walletFXCOP", Kind: KindText, Label: "COP", Group: "Costos fijos por transferencia", Placeholder: "$0", Rule: `walletA2A == "si"`},
			{Key: "walletFXUSD", Kind: KindText, Label: "USD", Group: "Costos fijos por transferencia", Placeholder: "$0", Rule: `walletA2A == "si"`},
			{Key: "walletFXCLP", Kind: KindText, Label: "CLP", Group: "Costos fijos por transferencia", Placeholder: "$0", Rule: `walletA2A == "si"`},
			{Key: "walletFXMXN", Kind: KindText, Label: "MXN", Group: "Costos fijos por transferencia", Placeholder: "$0", Rule: `walletA2A == "si"`},
			{Key: "walletFXPEN", Kind: KindText, Label: "PEN", Group: "Costos fijos por transferencia", Placeholder: "$0", Rule: `walletA2A == "si"`},
			{Key: "walletEndpoint", Kind: KindChoice, Label: "Endpoint consulta tasas de cambio", Rule: `walletA2A == "si"`, Options: []Choice{
				{Value: "si", Label: "Activar"},
				{Value: "no", Label: "No activar"},
			}},
		},
	},
}
