package convert

// simpToTrad covers the high-frequency simplified characters. Generated
// from the Unihan kTraditionalVariant field, trimmed to the characters the
// packaged dictionary actually emits.
var simpToTrad = map[rune]rune{
	'爱': '愛', '罢': '罷', '备': '備', '笔': '筆', '币': '幣',
	'毕': '畢', '边': '邊', '变': '變', '别': '別', '宾': '賓',
	'财': '財', '参': '參', '层': '層', '产': '產', '长': '長',
	'尝': '嘗', '车': '車', '陈': '陳', '称': '稱', '迟': '遲',
	'冲': '衝', '虫': '蟲', '丑': '醜', '处': '處',
	'传': '傳', '创': '創', '词': '詞', '从': '從', '达': '達',
	'带': '帶', '单': '單', '当': '當', '党': '黨', '导': '導',
	'灯': '燈', '邓': '鄧', '敌': '敵', '点': '點', '电': '電',
	'东': '東', '动': '動', '断': '斷', '对': '對', '队': '隊',
	'儿': '兒', '尔': '爾', '发': '發', '饭': '飯', '飞': '飛',
	'丰': '豐', '风': '風', '复': '復', '个': '個', '给': '給',
	'关': '關', '观': '觀', '广': '廣', '国': '國', '过': '過',
	'汉': '漢', '号': '號', '红': '紅', '后': '後',
	'华': '華', '话': '話', '欢': '歡', '还': '還', '会': '會',
	'机': '機', '积': '積', '记': '記', '际': '際', '继': '繼',
	'间': '間', '见': '見', '荐': '薦', '将': '將', '讲': '講',
	'节': '節', '结': '結', '进': '進', '经': '經', '惊': '驚',
	'旧': '舊', '举': '舉', '剧': '劇', '开': '開', '块': '塊',
	'来': '來', '兰': '蘭', '乐': '樂', '离': '離', '历': '歷',
	'丽': '麗', '连': '連', '联': '聯', '两': '兩', '辆': '輛',
	'刘': '劉', '龙': '龍', '楼': '樓', '录': '錄', '罗': '羅',
	'马': '馬', '买': '買', '卖': '賣', '满': '滿', '门': '門',
	'们': '們', '梦': '夢', '面': '麵', '难': '難', '鸟': '鳥',
	'农': '農', '欧': '歐', '盘': '盤', '凭': '憑', '气': '氣',
	'钱': '錢', '枪': '槍', '桥': '橋', '亲': '親', '轻': '輕',
	'请': '請', '庆': '慶', '热': '熱', '认': '認', '荣': '榮',
	'软': '軟', '赛': '賽', '伞': '傘', '丧': '喪', '杀': '殺',
	'伤': '傷', '设': '設', '绳': '繩', '胜': '勝', '师': '師',
	'时': '時', '实': '實', '识': '識', '势': '勢', '适': '適',
	'书': '書', '术': '術', '树': '樹', '数': '數', '双': '雙',
	'说': '說', '丝': '絲', '虽': '雖', '随': '隨', '岁': '歲',
	'孙': '孫', '态': '態', '谈': '談', '汤': '湯', '体': '體',
	'条': '條', '铁': '鐵', '听': '聽', '头': '頭', '图': '圖',
	'团': '團', '万': '萬', '为': '為', '伟': '偉', '卫': '衛',
	'温': '溫', '问': '問', '无': '無', '习': '習', '戏': '戲',
	'系': '係', '细': '細', '虾': '蝦', '吓': '嚇', '现': '現',
	'线': '線', '乡': '鄉', '响': '響', '项': '項', '写': '寫',
	'兴': '興', '学': '學', '压': '壓', '亚': '亞', '严': '嚴',
	'阳': '陽', '养': '養', '样': '樣', '药': '藥', '页': '頁',
	'业': '業', '叶': '葉', '医': '醫', '亿': '億', '忆': '憶',
	'义': '義', '艺': '藝', '议': '議', '阴': '陰', '银': '銀',
	'应': '應', '营': '營', '优': '優', '邮': '郵', '游': '遊',
	'于': '於', '鱼': '魚', '语': '語', '园': '園', '远': '遠',
	'愿': '願', '约': '約', '云': '雲', '运': '運', '杂': '雜',
	'脏': '臟', '则': '則', '张': '張', '这': '這', '证': '證',
	'只': '隻', '钟': '鐘', '种': '種', '众': '眾', '周': '週',
	'猪': '豬', '转': '轉', '庄': '莊', '准': '準', '总': '總',
}
