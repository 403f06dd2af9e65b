package classifier

import "github.com/evseev/kopilka/internal/model"

// AnchorSet holds the exemplar sentences for one category. Anchors are static
// configuration: embedded once at startup and never mutated afterwards.
type AnchorSet struct {
	Category model.Category
	Phrases  []string
}

// DefaultAnchors returns the built-in anchor phrase set. Every category except
// model.CategoryUnknown carries 1-3 exemplar sentences describing purchases
// that belong to it. Order is significant only for tie-breaking.
func DefaultAnchors() []AnchorSet {
	return []AnchorSet{
		{
			Category: model.CategoryFood,
			Phrases: []string{
				"Продукты питания, бакалея, молоко, хлеб, овощи в супермаркете",
				"Покупка еды в магазине Пятерочка, Магнит, Перекресток",
				"Ингредиенты для готовки, сырое мясо, крупы, фрукты",
			},
		},
		{
			Category: model.CategoryFastfood,
			Phrases: []string{
				"Фастфуд, бургер, чизбургер, картошка фри, наггетсы",
				"Готовая еда из ресторана, доставка пиццы, суши, роллы",
				"Кофе с собой, латте, капучино, посещение кофейни или столовой",
			},
		},
		{
			Category: model.CategoryElectronics,
			Phrases: []string{
				"Компьютерная периферия, игровая мышь, клавиатура, монитор",
				"Смартфоны, айфон, наушники, зарядные устройства, гаджеты",
				"Бытовая техника, ноутбуки, видеокарты, электроника",
			},
		},
		{
			Category: model.CategoryHousehold,
			Phrases: []string{
				"Мебель, товары для дома, ремонт, стройматериалы",
				"Покупка недвижимости, дом, квартира, апартаменты",
				"Хозяйственные товары, посуда, декор для интерьера",
			},
		},
		{
			Category: model.CategoryTransport,
			Phrases: []string{
				"Оплата общественного транспорта, метро, автобус, проездной",
				"Поездка на такси, каршеринг, аренда авто",
				"Бензин, автозаправка, техническое обслуживание автомобиля",
			},
		},
		{
			Category: model.CategoryFinance,
			Phrases: []string{
				"Брокерский счет, инвестиции, покупка акций и облигаций",
				"Перевод средств, пополнение банковской карты",
				"Оплата налогов, кредитов, ипотеки, штрафов",
			},
		},
		{
			Category: model.CategoryDigital,
			Phrases: []string{
				"Оплата домашнего интернета, мобильная связь, тариф",
				"Подписки на сервисы, игры, программное обеспечение",
				"VPN услуги, хостинг, облачные хранилища",
			},
		},
		{
			Category: model.CategoryHealth,
			Phrases: []string{
				"Аптека, покупка лекарств, таблетки, витамины",
				"Медицинские услуги, платная клиника, сдача анализов",
				"Стоматология, прием врача, лечение",
			},
		},
		{
			Category: model.CategoryUtilities,
			Phrases: []string{
				"Оплата услуг ЖКХ, квартплата, счета за электричество",
				"Водоснабжение, отопление, вывоз мусора, домофон",
			},
		},
		{
			Category: model.CategoryClothing,
			Phrases: []string{
				"Покупка одежды, куртка, штаны, джинсы, футболки",
				"Обувь, кроссовки, ботинки, туфли",
				"Аксессуары, сумки, покупки на маркетплейсах одежды",
			},
		},
		{
			Category: model.CategoryBeauty,
			Phrases: []string{
				"Салон красоты, парикмахерская, мужская стрижка, барбершоп",
				"Косметика, парфюмерия, средства по уходу за кожей",
				"Маникюр, педикюр, спа-процедуры, массаж",
			},
		},
		{
			Category: model.CategoryLeisure,
			Phrases: []string{
				"Кинотеатр, театр, выставка, концерт, билеты на мероприятия",
				"Хобби, настольные игры, развлечения, активный отдых",
				"Вейп, сигареты, табак, электронные испарители",
			},
		},
		{
			Category: model.CategoryPets,
			Phrases: []string{
				"Товары для животных, зоомагазин, игрушки для питомцев",
				"Корм для кошек, собак, наполнитель для лотка",
				"Ветеринарная клиника, груминг, услуги для животных",
			},
		},
	}
}
