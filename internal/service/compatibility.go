package service

import (
	"sort"
	"strings"

	"disc-match/internal/domain"
)

// Textos de compatibilidad del test original (tailandes). La clave son las
// dos letras del par ordenadas alfabeticamente, asi la relacion es simetrica.
// Las 10 combinaciones posibles de {D,I,S,C} estan cubiertas.
var compatibilityTexts = map[string]string{
	"DD": "🔥 ไฟแลบ: ต่างคนต่างแรง งานเดินไวมากแต่อาจจะทะเลาะกันบ่อย",
	"DI": "🚀 พุ่งทะยาน: คนนึงสั่ง คนนึงนำเสนอ เข้าขากันดีในเรื่องความเร็ว",
	"DS": "✅ สั่ง-ทำ: D สั่ง S ทำ เป็นคู่ที่งานเดินราบรื่นที่สุด",
	"CD": "⚡ ขั้วตรงข้าม: D เร็ว C ละเอียด อาจหงุดหงิดกัน แต่ผลงานจะสมบูรณ์แบบ",
	"II": "🎉 ปาร์ตี้: สนุกสนาน ไอเดียกระฉูด แต่อาจจะงานไม่เสร็จตามดีล",
	"IS": "🤝 เพื่อนรัก: บรรยากาศดีมาก ช่วยเหลือกัน แต่การตัดสินใจอาจช้า",
	"CI": "🧩 เติมเต็ม: I คิดนอกกรอบ C ตบเข้ากรอบ เป็น Dream Team ด้านความคิดสร้างสรรค์",
	"SS": "🕊️ สงบสุข: เข้าใจกันดีมาก แต่งานอาจจะเอื่อยๆ ขาดคนกระตุ้น",
	"CS": "📋 มั่นคง: S คอยซัพพอร์ต C วางระบบ งานจะเรียบร้อยและเป็นระเบียบมาก",
	"CC": "🔍 ตรวจยับ: ละเอียดขั้นสุด หาข้อผิดพลาดเก่ง แต่อาจจะใช้เวลานานเกินไป",
}

const compatibilityFallback = "ความสัมพันธ์ปกติ"

// ResolvePairText devuelve el texto de compatibilidad para un par de tipos
// dominantes. El orden de los argumentos no importa. El conjunto de
// categorias es cerrado, asi que el fallback no deberia ocurrir, pero se
// devuelve un texto generico por si la clave no existe.
func ResolvePairText(a, b domain.Category) string {
	letters := []string{string(a), string(b)}
	sort.Strings(letters)
	if text, ok := compatibilityTexts[strings.Join(letters, "")]; ok {
		return text
	}
	return compatibilityFallback
}
