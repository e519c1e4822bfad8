package i18n

// resources holds the localized message tables. Keys follow the
// `<categoria>.<assunto>` convention used across the API envelopes.
var resources = map[string]map[string]string{
	LocalePtBR: {
		"sucesso.login":         "Login realizado com sucesso. Bem-vindo(a), {{nome}}!",
		"sucesso.logout":        "Logout realizado com sucesso",
		"sucesso.tokenRenovado": "Token renovado com sucesso",

		"erro.credenciaisInvalidas":   "Credenciais inválidas",
		"erro.tokenRenovacaoInvalido": "Token de renovação inválido",
		"erro.sessaoExpirada":         "Sessão expirada, faça login novamente",
		"erro.naoAutorizado":          "Autenticação necessária",

		"erro.validacaoDados":     "Dados inválidos: {{detalhes}}",
		"erro.requisicaoInvalida": "Corpo da requisição inválido",
		"erro.internoServidor":    "Erro interno no servidor",

		"sucesso.usuarioCadastrado":    "Usuário cadastrado com sucesso",
		"sucesso.listaUsuarios":        "Usuários listados com sucesso",
		"sucesso.usuarioEncontrado":    "Usuário encontrado",
		"sucesso.usuariosEncontrados":  "Usuários encontrados",
		"sucesso.usuarioAtualizado":    "Usuário atualizado com sucesso",
		"sucesso.usuarioExcluido":      "Usuário excluído com sucesso",
		"erro.usuarioNaoEncontrado":    "Usuário não encontrado",
		"erro.usuariosNaoEncontrados":  "Nenhum usuário encontrado",
		"erro.emailJaCadastrado":       "E-mail já cadastrado",

		"sucesso.contaCriada":     "Conta criada com sucesso",
		"sucesso.listaContas":     "Contas listadas com sucesso",
		"sucesso.contaEncontrada": "Conta encontrada",
		"sucesso.contaAtualizada": "Conta atualizada com sucesso",
		"sucesso.contaExcluida":   "Conta excluída com sucesso, vínculo com o usuário removido",
		"erro.contaNaoEncontrada": "Conta não encontrada",

		"sucesso.cartaoCriado":     "Cartão de crédito criado com sucesso",
		"sucesso.listaCartoes":     "Cartões de crédito listados com sucesso",
		"sucesso.cartaoEncontrado": "Cartão de crédito encontrado",
		"sucesso.cartaoAtualizado": "Cartão de crédito atualizado com sucesso",
		"sucesso.cartaoExcluido":   "Cartão de crédito excluído com sucesso, vínculo com o usuário removido",
		"erro.cartaoNaoEncontrado": "Cartão de crédito não encontrado",

		"sucesso.categoriaCriada":     "Categoria criada com sucesso",
		"sucesso.listaCategorias":     "Categorias listadas com sucesso",
		"sucesso.categoriaEncontrada": "Categoria encontrada",
		"sucesso.categoriaAtualizada": "Categoria atualizada com sucesso",
		"sucesso.categoriaExcluida":   "Categoria excluída com sucesso, subcategorias removidas",
		"erro.categoriaNaoEncontrada": "Categoria não encontrada",
		"erro.categoriaEmUso":         "Categoria em uso por transações, exclusão não permitida",
		"erro.nomeJaCadastrado":       "Já existe um registro com este nome",

		"sucesso.subcategoriaCriada":     "Subcategoria criada com sucesso",
		"sucesso.listaSubcategorias":     "Subcategorias listadas com sucesso",
		"sucesso.subcategoriaEncontrada": "Subcategoria encontrada",
		"sucesso.subcategoriaAtualizada": "Subcategoria atualizada com sucesso",
		"sucesso.subcategoriaExcluida":   "Subcategoria excluída com sucesso, vínculo com a categoria removido",
		"erro.subcategoriaNaoEncontrada": "Subcategoria não encontrada",

		"sucesso.tagCriada":     "Tag criada com sucesso",
		"sucesso.listaTags":     "Tags listadas com sucesso",
		"sucesso.tagEncontrada": "Tag encontrada",
		"sucesso.tagAtualizada": "Tag atualizada com sucesso",
		"sucesso.tagExcluida":   "Tag excluída com sucesso, vínculo com o usuário removido",
		"erro.tagNaoEncontrada": "Tag não encontrada",

		"sucesso.transacaoCriada":     "Transação criada com sucesso",
		"sucesso.listaTransacoes":     "Transações listadas com sucesso",
		"sucesso.transacaoEncontrada": "Transação encontrada",
		"sucesso.transacaoAtualizada": "Transação atualizada com sucesso",
		"sucesso.transacaoExcluida":   "Transação excluída com sucesso",
		"erro.transacaoNaoEncontrada": "Transação não encontrada",
	},
	LocaleEnUS: {
		"sucesso.login":         "Login successful. Welcome, {{nome}}!",
		"sucesso.logout":        "Logout successful",
		"sucesso.tokenRenovado": "Token renewed successfully",

		"erro.credenciaisInvalidas":   "Invalid credentials",
		"erro.tokenRenovacaoInvalido": "Invalid renewal token",
		"erro.sessaoExpirada":         "Session expired, please log in again",
		"erro.naoAutorizado":          "Authentication required",

		"erro.validacaoDados":     "Invalid data: {{detalhes}}",
		"erro.requisicaoInvalida": "Invalid request body",
		"erro.internoServidor":    "Internal server error",

		"sucesso.usuarioCadastrado":    "User registered successfully",
		"sucesso.listaUsuarios":        "Users listed successfully",
		"sucesso.usuarioEncontrado":    "User found",
		"sucesso.usuariosEncontrados":  "Users found",
		"sucesso.usuarioAtualizado":    "User updated successfully",
		"sucesso.usuarioExcluido":      "User deleted successfully",
		"erro.usuarioNaoEncontrado":    "User not found",
		"erro.usuariosNaoEncontrados":  "No users found",
		"erro.emailJaCadastrado":       "E-mail already registered",

		"sucesso.contaCriada":     "Account created successfully",
		"sucesso.listaContas":     "Accounts listed successfully",
		"sucesso.contaEncontrada": "Account found",
		"sucesso.contaAtualizada": "Account updated successfully",
		"sucesso.contaExcluida":   "Account deleted successfully, user link removed",
		"erro.contaNaoEncontrada": "Account not found",

		"sucesso.cartaoCriado":     "Credit card created successfully",
		"sucesso.listaCartoes":     "Credit cards listed successfully",
		"sucesso.cartaoEncontrado": "Credit card found",
		"sucesso.cartaoAtualizado": "Credit card updated successfully",
		"sucesso.cartaoExcluido":   "Credit card deleted successfully, user link removed",
		"erro.cartaoNaoEncontrado": "Credit card not found",

		"sucesso.categoriaCriada":     "Category created successfully",
		"sucesso.listaCategorias":     "Categories listed successfully",
		"sucesso.categoriaEncontrada": "Category found",
		"sucesso.categoriaAtualizada": "Category updated successfully",
		"sucesso.categoriaExcluida":   "Category deleted successfully, subcategories removed",
		"erro.categoriaNaoEncontrada": "Category not found",
		"erro.categoriaEmUso":         "Category is in use by transactions, deletion not allowed",
		"erro.nomeJaCadastrado":       "A record with this name already exists",

		"sucesso.subcategoriaCriada":     "Subcategory created successfully",
		"sucesso.listaSubcategorias":     "Subcategories listed successfully",
		"sucesso.subcategoriaEncontrada": "Subcategory found",
		"sucesso.subcategoriaAtualizada": "Subcategory updated successfully",
		"sucesso.subcategoriaExcluida":   "Subcategory deleted successfully, category link removed",
		"erro.subcategoriaNaoEncontrada": "Subcategory not found",

		"sucesso.tagCriada":     "Tag created successfully",
		"sucesso.listaTags":     "Tags listed successfully",
		"sucesso.tagEncontrada": "Tag found",
		"sucesso.tagAtualizada": "Tag updated successfully",
		"sucesso.tagExcluida":   "Tag deleted successfully, user link removed",
		"erro.tagNaoEncontrada": "Tag not found",

		"sucesso.transacaoCriada":     "Transaction created successfully",
		"sucesso.listaTransacoes":     "Transactions listed successfully",
		"sucesso.transacaoEncontrada": "Transaction found",
		"sucesso.transacaoAtualizada": "Transaction updated successfully",
		"sucesso.transacaoExcluida":   "Transaction deleted successfully",
		"erro.transacaoNaoEncontrada": "Transaction not found",
	},
	LocaleEsES: {
		"sucesso.login":         "Inicio de sesión exitoso. ¡Bienvenido(a), {{nome}}!",
		"sucesso.logout":        "Cierre de sesión exitoso",
		"sucesso.tokenRenovado": "Token renovado con éxito",

		"erro.credenciaisInvalidas":   "Credenciales inválidas",
		"erro.tokenRenovacaoInvalido": "Token de renovación inválido",
		"erro.sessaoExpirada":         "Sesión expirada, inicie sesión nuevamente",
		"erro.naoAutorizado":          "Autenticación requerida",

		"erro.validacaoDados":     "Datos inválidos: {{detalhes}}",
		"erro.requisicaoInvalida": "Cuerpo de la solicitud inválido",
		"erro.internoServidor":    "Error interno del servidor",

		"sucesso.usuarioCadastrado":    "Usuario registrado con éxito",
		"sucesso.listaUsuarios":        "Usuarios listados con éxito",
		"sucesso.usuarioEncontrado":    "Usuario encontrado",
		"sucesso.usuariosEncontrados":  "Usuarios encontrados",
		"sucesso.usuarioAtualizado":    "Usuario actualizado con éxito",
		"sucesso.usuarioExcluido":      "Usuario eliminado con éxito",
		"erro.usuarioNaoEncontrado":    "Usuario no encontrado",
		"erro.usuariosNaoEncontrados":  "Ningún usuario encontrado",
		"erro.emailJaCadastrado":       "Correo electrónico ya registrado",

		"sucesso.contaCriada":     "Cuenta creada con éxito",
		"sucesso.listaContas":     "Cuentas listadas con éxito",
		"sucesso.contaEncontrada": "Cuenta encontrada",
		"sucesso.contaAtualizada": "Cuenta actualizada con éxito",
		"sucesso.contaExcluida":   "Cuenta eliminada con éxito, vínculo con el usuario removido",
		"erro.contaNaoEncontrada": "Cuenta no encontrada",

		"sucesso.cartaoCriado":     "Tarjeta de crédito creada con éxito",
		"sucesso.listaCartoes":     "Tarjetas de crédito listadas con éxito",
		"sucesso.cartaoEncontrado": "Tarjeta de crédito encontrada",
		"sucesso.cartaoAtualizado": "Tarjeta de crédito actualizada con éxito",
		"sucesso.cartaoExcluido":   "Tarjeta de crédito eliminada con éxito, vínculo con el usuario removido",
		"erro.cartaoNaoEncontrado": "Tarjeta de crédito no encontrada",

		"sucesso.categoriaCriada":     "Categoría creada con éxito",
		"sucesso.listaCategorias":     "Categorías listadas con éxito",
		"sucesso.categoriaEncontrada": "Categoría encontrada",
		"sucesso.categoriaAtualizada": "Categoría actualizada con éxito",
		"sucesso.categoriaExcluida":   "Categoría eliminada con éxito, subcategorías removidas",
		"erro.categoriaNaoEncontrada": "Categoría no encontrada",
		"erro.categoriaEmUso":         "Categoría en uso por transacciones, eliminación no permitida",
		"erro.nomeJaCadastrado":       "Ya existe un registro con este nombre",

		"sucesso.subcategoriaCriada":     "Subcategoría creada con éxito",
		"sucesso.listaSubcategorias":     "Subcategorías listadas con éxito",
		"sucesso.subcategoriaEncontrada": "Subcategoría encontrada",
		"sucesso.subcategoriaAtualizada": "Subcategoría actualizada con éxito",
		"sucesso.subcategoriaExcluida":   "Subcategoría eliminada con éxito, vínculo con la categoría removido",
		"erro.subcategoriaNaoEncontrada": "Subcategoría no encontrada",

		"sucesso.tagCriada":     "Tag creada con éxito",
		"sucesso.listaTags":     "Tags listadas con éxito",
		"sucesso.tagEncontrada": "Tag encontrada",
		"sucesso.tagAtualizada": "Tag actualizada con éxito",
		"sucesso.tagExcluida":   "Tag eliminada con éxito, vínculo con el usuario removido",
		"erro.tagNaoEncontrada": "Tag no encontrada",

		"sucesso.transacaoCriada":     "Transacción creada con éxito",
		"sucesso.listaTransacoes":     "Transacciones listadas con éxito",
		"sucesso.transacaoEncontrada": "Transacción encontrada",
		"sucesso.transacaoAtualizada": "Transacción actualizada con éxito",
		"sucesso.transacaoExcluida":   "Transacción eliminada con éxito",
		"erro.transacaoNaoEncontrada": "Transacción no encontrada",
	},
}
